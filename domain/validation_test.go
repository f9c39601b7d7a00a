package domain_test

import (
	"shopfloor/domain"
	"testing"

	. "github.com/onsi/gomega"
)

func validWorkOrder() domain.WorkOrder {
	return domain.WorkOrder{
		ID: "WO-1001", StartDate: domain.DateOf(2024, 3, 1), EndDate: domain.DateOf(2024, 3, 8),
		Site: "Plant A", WorkCenter: "CNC-01", Operation: "Milling", Status: domain.StatusPlanned,
		Target: 100, Produced: 20, Team: "T-ALPHA",
	}
}

func TestValidateWorkOrder(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should return no message for a valid work order", func(t *testing.T) {
		w := validWorkOrder()
		Expect(domain.ValidateWorkOrder(&w)).To(BeEmpty())
	})

	t.Run("should collect every missing required field", func(t *testing.T) {
		Expect(domain.ValidateWorkOrder(&domain.WorkOrder{})).To(Equal([]string{
			"id is required",
			"site is required",
			"work center is required",
			"status is required",
			"start date is required",
			"end date is required",
		}))
	})

	t.Run("should report start after end", func(t *testing.T) {
		w := validWorkOrder()
		w.StartDate = domain.DateOf(2024, 4, 1)
		Expect(domain.ValidateWorkOrder(&w)).To(Equal([]string{"start date must not be after end date"}))
	})

	t.Run("should accept equal start and end dates", func(t *testing.T) {
		w := validWorkOrder()
		w.EndDate = w.StartDate
		Expect(domain.ValidateWorkOrder(&w)).To(BeEmpty())
	})

	t.Run("should report produced exceeding target", func(t *testing.T) {
		w := validWorkOrder()
		w.Produced = 101
		Expect(domain.ValidateWorkOrder(&w)).To(Equal([]string{"produced quantity 101 exceeds target 100"}))
	})

	t.Run("should report unknown status", func(t *testing.T) {
		w := validWorkOrder()
		w.Status = "scrapped"
		Expect(domain.ValidateWorkOrder(&w)).To(Equal([]string{"status 'scrapped' is unknown"}))
	})

	t.Run("should not accept the filter-only status", func(t *testing.T) {
		w := validWorkOrder()
		w.Status = domain.StatusAll
		Expect(domain.ValidateWorkOrder(&w)).To(Equal([]string{"status 'all' is unknown"}))
	})

	t.Run("should handle nil", func(t *testing.T) {
		Expect(domain.ValidateWorkOrder(nil)).To(Equal([]string{"work order is required"}))
	})
}
