package domain_test

import (
	"encoding/json"
	"shopfloor/domain"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestDate(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should encode as a calendar date string", func(t *testing.T) {
		bytes, err := json.Marshal(struct {
			Start domain.Date `json:"start"`
			End   domain.Date `json:"end"`
		}{Start: domain.DateOf(2024, 3, 1)})
		Expect(err).To(BeNil())
		Expect(string(bytes)).To(MatchJSON(`{"start": "2024-03-01", "end": ""}`))
	})

	t.Run("should decode calendar date strings", func(t *testing.T) {
		v := struct {
			Start domain.Date `json:"start"`
			End   domain.Date `json:"end"`
		}{}
		Expect(json.Unmarshal([]byte(`{"start": "2024-03-01", "end": ""}`), &v)).To(Succeed())
		Expect(v.Start).To(Equal(domain.DateOf(2024, 3, 1)))
		Expect(v.End.IsZero()).To(BeTrue())
	})

	t.Run("should reject malformed dates", func(t *testing.T) {
		_, err := domain.ParseDate("03/01/2024")
		Expect(err).ToNot(BeNil())
	})

	t.Run("should drop the time of day", func(t *testing.T) {
		d := domain.DateFromTime(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC))
		Expect(d.Equal(domain.DateOf(2024, 3, 1))).To(BeTrue())
		Expect(d.Before(domain.DateOf(2024, 3, 2))).To(BeTrue())
		Expect(d.After(domain.DateOf(2024, 2, 29))).To(BeTrue())
		Expect(d.String()).To(Equal("2024-03-01"))
	})
}
