package testinfra

import (
	"io"
	"net/http"
	"net/http/httptest"

	"shopfloor/domain"
	"shopfloor/event"
)

// ExecuteRequest serves req on router and returns the recorded status, body and headers.
func ExecuteRequest(req *http.Request, router http.Handler) (int, string, http.Header) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	body, _ := io.ReadAll(w.Body)
	return w.Code, string(body), w.Header()
}

// BuildWorkOrder builds a planned, valid work order due on 2024-03-31.
func BuildWorkOrder(id string) domain.WorkOrder {
	return domain.WorkOrder{
		ID:         id,
		StartDate:  domain.DateOf(2024, 3, 1),
		EndDate:    domain.DateOf(2024, 3, 31),
		Site:       "S-LYON",
		WorkCenter: "WC-ASSEMBLY",
		Operation:  "assembly",
		Status:     domain.StatusPlanned,
		Target:     100,
		Employees:  []domain.Employee{},
	}
}

// EventRecorder collects every event record published on a bus.
type EventRecorder struct {
	Records []*event.EventRecord
}

func RecordEvents(bus *event.Bus) *EventRecorder {
	r := &EventRecorder{}
	bus.Subscribe(func(e *event.EventRecord) *event.EventHandleResult {
		r.Records = append(r.Records, e)
		return nil
	})
	return r
}
