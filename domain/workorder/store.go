package workorder

import (
	"sync"

	"shopfloor/domain"
	"shopfloor/event"
)

// Store holds the work orders of the running process in insertion order.
//
// Mutations referencing an unknown work order are silent no-ops and return a nil error.
// Every applied mutation publishes exactly one event on the bus, after the store lock is released.
type Store struct {
	lock   sync.RWMutex
	orders []domain.WorkOrder
	bus    *event.Bus
}

// NewStore seeds a store with orders. Seeding publishes no event.
func NewStore(bus *event.Bus, orders ...domain.WorkOrder) (*Store, error) {
	s := &Store{bus: bus, orders: []domain.WorkOrder{}}
	for _, o := range orders {
		if s.indexOf(o.ID) >= 0 {
			return nil, domain.ErrWorkOrderExisted
		}
		s.orders = append(s.orders, prepare(o))
	}
	return s, nil
}

// prepare detaches o from the caller and derives its progress.
func prepare(o domain.WorkOrder) domain.WorkOrder {
	c := o.Clone()
	if c.Employees == nil {
		c.Employees = []domain.Employee{}
	}
	c.Progress, _ = domain.ComputeProgress(c.Produced, c.Target)
	return c
}

func (s *Store) indexOf(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// Create appends order. Duplicate ids are rejected with domain.ErrWorkOrderExisted and
// statuses outside the catalog with domain.ErrUnknownStatus. An empty status is kept as is.
func (s *Store) Create(order domain.WorkOrder) error {
	if order.Status != "" && !order.Status.Valid() {
		return domain.ErrUnknownStatus
	}
	s.lock.Lock()
	if s.indexOf(order.ID) >= 0 {
		s.lock.Unlock()
		return domain.ErrWorkOrderExisted
	}
	created := prepare(order)
	s.orders = append(s.orders, created)
	s.lock.Unlock()

	s.bus.Publish(createdEvent(&created))
	return nil
}

// Update shallow-merges patch into the order. A supplied Produced or Target recomputes the progress and
// fails with domain.ErrInvalidTarget, leaving the order untouched, when the resulting target is zero.
// A patched status outside the catalog is rejected with domain.ErrUnknownStatus.
func (s *Store) Update(id string, patch *domain.WorkOrderPatch) error {
	if patch == nil {
		return nil
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.ErrUnknownStatus
	}
	s.lock.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.lock.Unlock()
		return nil
	}
	old := s.orders[idx].Clone()
	updated := old.Clone()
	patch.Apply(&updated)
	if patch.Produced != nil || patch.Target != nil {
		progress, err := domain.ComputeProgress(updated.Produced, updated.Target)
		if err != nil {
			s.lock.Unlock()
			return err
		}
		updated.Progress = progress
	}
	if updated.Employees == nil {
		updated.Employees = []domain.Employee{}
	}
	s.orders[idx] = updated
	s.lock.Unlock()

	s.bus.Publish(propertiesUpdatedEvent(&old, &updated))
	return nil
}

// Remove drops the order together with its employee assignments.
func (s *Store) Remove(id string) {
	s.lock.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.lock.Unlock()
		return
	}
	removed := s.orders[idx]
	s.orders = append(s.orders[:idx:idx], s.orders[idx+1:]...)
	s.lock.Unlock()

	s.bus.Publish(deletedEvent(&removed))
}

// AssignEmployee appends employee without de-duplication, the same employee may be assigned twice.
func (s *Store) AssignEmployee(workOrderID string, employee domain.Employee) {
	s.lock.Lock()
	idx := s.indexOf(workOrderID)
	if idx < 0 {
		s.lock.Unlock()
		return
	}
	o := &s.orders[idx]
	o.Employees = append(append([]domain.Employee{}, o.Employees...), employee)
	source := *o
	s.lock.Unlock()

	s.bus.Publish(employeeAssignedEvent(&source, &employee))
}

// UnassignEmployee removes every assignment of employeeID.
func (s *Store) UnassignEmployee(workOrderID, employeeID string) {
	s.lock.Lock()
	idx := s.indexOf(workOrderID)
	if idx < 0 {
		s.lock.Unlock()
		return
	}
	o := &s.orders[idx]
	kept := []domain.Employee{}
	var removed []domain.Employee
	for _, e := range o.Employees {
		if e.ID == employeeID {
			removed = append(removed, e)
		} else {
			kept = append(kept, e)
		}
	}
	if len(removed) == 0 {
		s.lock.Unlock()
		return
	}
	o.Employees = kept
	source := *o
	s.lock.Unlock()

	s.bus.Publish(employeesUnassignedEvent(&source, removed))
}

// RecordProgress sets the produced quantity and recomputes the progress.
// A zero target fails with domain.ErrInvalidTarget and the order is left untouched.
func (s *Store) RecordProgress(workOrderID string, produced uint64) error {
	s.lock.Lock()
	idx := s.indexOf(workOrderID)
	if idx < 0 {
		s.lock.Unlock()
		return nil
	}
	o := &s.orders[idx]
	progress, err := domain.ComputeProgress(produced, o.Target)
	if err != nil {
		s.lock.Unlock()
		return err
	}
	old := o.Clone()
	o.Produced = produced
	o.Progress = progress
	updated := o.Clone()
	s.lock.Unlock()

	s.bus.Publish(propertiesUpdatedEvent(&old, &updated))
	return nil
}

// SetStatus overwrites the status, any status may follow any other.
// Only values outside the status catalog are rejected, with domain.ErrUnknownStatus.
func (s *Store) SetStatus(workOrderID string, status domain.Status) error {
	if !status.Valid() {
		return domain.ErrUnknownStatus
	}
	s.lock.Lock()
	idx := s.indexOf(workOrderID)
	if idx < 0 {
		s.lock.Unlock()
		return nil
	}
	o := &s.orders[idx]
	old := o.Clone()
	o.Status = status
	updated := o.Clone()
	s.lock.Unlock()

	s.bus.Publish(propertiesUpdatedEvent(&old, &updated))
	return nil
}

// List returns a snapshot of all orders in insertion order.
func (s *Store) List() []domain.WorkOrder {
	s.lock.RLock()
	defer s.lock.RUnlock()
	r := make([]domain.WorkOrder, 0, len(s.orders))
	for _, o := range s.orders {
		r = append(r, o.Clone())
	}
	return r
}

func (s *Store) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.orders)
}

func (s *Store) Detail(id string) (*domain.WorkOrder, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	o := s.orders[idx].Clone()
	return &o, nil
}

func (s *Store) Query(q *domain.WorkOrderQuery) []domain.WorkOrder {
	return domain.QueryWorkOrders(s.List(), q)
}
