package event

import (
	"github.com/fundwit/go-commons/types"
)

const (
	EventCategoryCreated         = "CREATED"
	EventCategoryDeleted         = "DELETED"
	EventCategoryPropertyUpdated = "PROPERTY_UPDATED"
	EventCategoryRelationUpdated = "RELATION_UPDATED"
)

type EventCategory string

type Event struct {
	SourceId   string `json:"sourceId"`
	SourceType string `json:"sourceType"`
	SourceDesc string `json:"sourceDesc"`

	EventCategory     EventCategory     `json:"eventCategory"` // CREATED, DELETED, PROPERTY_UPDATED, RELATION_UPDATED
	UpdatedProperties UpdatedProperties `json:"updatedProperties"`
	UpdatedRelations  UpdatedRelations  `json:"updatedRelations"`
}

type EventRecord struct {
	ID types.ID `json:"id"`
	Event

	Timestamp types.Timestamp `json:"timestamp"`
}

type UpdatedProperty struct {
	PropertyName string `json:"propertyName"`
	PropertyDesc string `json:"propertyDesc"`

	OldValue     string `json:"oldValue"`
	OldValueDesc string `json:"oldValueDesc"`
	NewValue     string `json:"newValue"`
	NewValueDesc string `json:"newValueDesc"`
}

type UpdatedProperties []UpdatedProperty

type UpdatedRelation struct {
	PropertyName string `json:"propertyName"`
	PropertyDesc string `json:"propertyDesc"`

	TargetType     string `json:"targetType"`
	TargetTypeDesc string `json:"targetTypeDesc"`

	OldTargetId   string `json:"oldTargetId"`
	OldTargetDesc string `json:"oldTargetDesc"`
	NewTargetId   string `json:"newTargetId"`
	NewTargetDesc string `json:"newTargetDesc"`
}

type UpdatedRelations []UpdatedRelation

// PropertyNames lists the names of the updated properties in order.
func (t UpdatedProperties) PropertyNames() []string {
	names := make([]string, 0, len(t))
	for _, p := range t {
		names = append(names, p.PropertyName)
	}
	return names
}
