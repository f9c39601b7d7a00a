package domain

import (
	"shopfloor/common"
)

// FilterByStatus returns orders whose status equals status; StatusAll and the empty status return everything.
func FilterByStatus(orders []WorkOrder, status Status) []WorkOrder {
	if status == StatusAll || status == "" {
		return orders
	}
	r := []WorkOrder{}
	for _, o := range orders {
		if o.Status == status {
			r = append(r, o)
		}
	}
	return r
}

// SearchWorkOrders matches keyword case-insensitively against identifiers and names.
func SearchWorkOrders(orders []WorkOrder, keyword string) []WorkOrder {
	if keyword == "" {
		return orders
	}
	r := []WorkOrder{}
	for _, o := range orders {
		if o.Matches(keyword) {
			r = append(r, o)
		}
	}
	return r
}

func (w *WorkOrder) Matches(keyword string) bool {
	for _, field := range []string{w.ID, w.Site, w.WorkCenter, w.Operation, w.Team} {
		if common.ContainsFold(field, keyword) {
			return true
		}
	}
	for _, e := range w.Employees {
		if common.ContainsFold(e.Name, keyword) || common.ContainsFold(e.ID, keyword) {
			return true
		}
	}
	return false
}

func QueryWorkOrders(orders []WorkOrder, q *WorkOrderQuery) []WorkOrder {
	if q == nil {
		return orders
	}
	return SearchWorkOrders(FilterByStatus(orders, q.Status), q.Keyword)
}
