package workorder

import (
	"strconv"
	"strings"

	"shopfloor/domain"
	"shopfloor/event"
)

const (
	SourceTypeWorkOrder = "WORK_ORDER"
	TargetTypeEmployee  = "EMPLOYEE"
)

func sourceDesc(w *domain.WorkOrder) string {
	return w.Site + " / " + w.WorkCenter
}

func createdEvent(w *domain.WorkOrder) event.Event {
	return event.Event{SourceType: SourceTypeWorkOrder, SourceId: w.ID, SourceDesc: sourceDesc(w),
		EventCategory: event.EventCategoryCreated}
}

func deletedEvent(w *domain.WorkOrder) event.Event {
	return event.Event{SourceType: SourceTypeWorkOrder, SourceId: w.ID, SourceDesc: sourceDesc(w),
		EventCategory: event.EventCategoryDeleted}
}

func propertiesUpdatedEvent(old, updated *domain.WorkOrder) event.Event {
	return event.Event{SourceType: SourceTypeWorkOrder, SourceId: updated.ID, SourceDesc: sourceDesc(updated),
		EventCategory: event.EventCategoryPropertyUpdated, UpdatedProperties: diffProperties(old, updated)}
}

func employeeAssignedEvent(w *domain.WorkOrder, e *domain.Employee) event.Event {
	return event.Event{SourceType: SourceTypeWorkOrder, SourceId: w.ID, SourceDesc: sourceDesc(w),
		EventCategory: event.EventCategoryRelationUpdated,
		UpdatedRelations: event.UpdatedRelations{{
			PropertyName: "Employees", PropertyDesc: "Employees",
			TargetType: TargetTypeEmployee, TargetTypeDesc: "Employee",
			NewTargetId: e.ID, NewTargetDesc: e.Name,
		}},
	}
}

func employeesUnassignedEvent(w *domain.WorkOrder, removed []domain.Employee) event.Event {
	relations := event.UpdatedRelations{}
	for _, e := range removed {
		relations = append(relations, event.UpdatedRelation{
			PropertyName: "Employees", PropertyDesc: "Employees",
			TargetType: TargetTypeEmployee, TargetTypeDesc: "Employee",
			OldTargetId: e.ID, OldTargetDesc: e.Name,
		})
	}
	return event.Event{SourceType: SourceTypeWorkOrder, SourceId: w.ID, SourceDesc: sourceDesc(w),
		EventCategory: event.EventCategoryRelationUpdated, UpdatedRelations: relations}
}

func diffProperties(old, updated *domain.WorkOrder) event.UpdatedProperties {
	props := event.UpdatedProperties{}
	add := func(name, oldValue, newValue string) {
		if oldValue != newValue {
			props = append(props, event.UpdatedProperty{PropertyName: name, PropertyDesc: name,
				OldValue: oldValue, OldValueDesc: oldValue, NewValue: newValue, NewValueDesc: newValue})
		}
	}
	add("StartDate", old.StartDate.String(), updated.StartDate.String())
	add("EndDate", old.EndDate.String(), updated.EndDate.String())
	add("Site", old.Site, updated.Site)
	add("WorkCenter", old.WorkCenter, updated.WorkCenter)
	add("Operation", old.Operation, updated.Operation)
	add("Status", string(old.Status), string(updated.Status))
	add("Target", strconv.FormatUint(old.Target, 10), strconv.FormatUint(updated.Target, 10))
	add("Produced", strconv.FormatUint(old.Produced, 10), strconv.FormatUint(updated.Produced, 10))
	add("Progress", strconv.Itoa(old.Progress), strconv.Itoa(updated.Progress))
	add("Team", old.Team, updated.Team)
	add("Employees", employeeIDs(old.Employees), employeeIDs(updated.Employees))
	return props
}

func employeeIDs(employees []domain.Employee) string {
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	return strings.Join(ids, ",")
}
