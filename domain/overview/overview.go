package overview

import (
	"math"
	"sync/atomic"
	"time"

	"shopfloor/domain"
	"shopfloor/event"

	"github.com/patrickmn/go-cache"
)

type WorkOrderLister interface {
	List() []domain.WorkOrder
}

type Summary struct {
	Date              domain.Date           `json:"date"`
	Total             int                   `json:"total"`
	ByStatus          map[domain.Status]int `json:"byStatus"`
	Overdue           int                   `json:"overdue"`
	Target            uint64                `json:"target"`
	Produced          uint64                `json:"produced"`
	Progress          int                   `json:"progress"`
	AssignedEmployees int                   `json:"assignedEmployees"`
}

// Service memoizes summaries per calendar day until the TTL expires or the work orders change.
type Service struct {
	orders WorkOrderLister
	cache  *cache.Cache
	// generation counts the flushes, a summary computed across a flush is not cached.
	generation atomic.Uint64
}

func NewService(orders WorkOrderLister, bus *event.Bus, ttl time.Duration) *Service {
	s := &Service{orders: orders, cache: cache.New(ttl, 10*ttl)}
	if bus != nil {
		bus.Subscribe(s.handleEvent)
	}
	return s
}

func (s *Service) handleEvent(e *event.EventRecord) *event.EventHandleResult {
	s.generation.Add(1)
	s.cache.Flush()
	return nil
}

func (s *Service) Summary(now time.Time) *Summary {
	key := domain.DateFromTime(now).String()
	if cached, found := s.cache.Get(key); found {
		if summary, ok := cached.(*Summary); ok {
			return summary
		}
	}
	generation := s.generation.Load()
	summary := Summarize(s.orders.List(), now)
	if s.generation.Load() == generation {
		s.cache.SetDefault(key, summary)
	}
	return summary
}

func Summarize(orders []domain.WorkOrder, now time.Time) *Summary {
	summary := &Summary{Date: domain.DateFromTime(now), ByStatus: map[domain.Status]int{}}
	for _, status := range domain.Statuses() {
		summary.ByStatus[status] = 0
	}
	employees := map[string]bool{}
	for i := range orders {
		o := &orders[i]
		summary.Total++
		summary.ByStatus[o.Status]++
		if o.IsOverdue(now) {
			summary.Overdue++
		}
		summary.Target += o.Target
		summary.Produced += o.Produced
		for _, e := range o.Employees {
			if e.Exists {
				employees[e.ID] = true
			}
		}
	}
	summary.AssignedEmployees = len(employees)
	if summary.Target > 0 {
		summary.Progress = int(math.Round(float64(summary.Produced) / float64(summary.Target) * 100))
	}
	return summary
}
