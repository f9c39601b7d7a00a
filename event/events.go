package event

import (
	"shopfloor/common"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

func CreateEvent(idWorker *sonyflake.Sonyflake, sourceType string, sourceId string, sourceDesc string, category EventCategory,
	updatedProperties []UpdatedProperty, updatedRelations []UpdatedRelation, timestamp types.Timestamp) *EventRecord {

	return &EventRecord{
		ID: common.NextId(idWorker),
		Event: Event{
			SourceType: sourceType,
			SourceId:   sourceId,
			SourceDesc: sourceDesc,

			EventCategory:     category,
			UpdatedProperties: updatedProperties,
			UpdatedRelations:  updatedRelations,
		},
		Timestamp: timestamp,
	}
}
