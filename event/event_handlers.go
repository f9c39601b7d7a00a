package event

import (
	"sync"

	"shopfloor/common"

	"github.com/fundwit/go-commons/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/sonyflake"
)

/*
return nil if not support
*/
type EventHandler func(e *EventRecord) *EventHandleResult

type EventHandleResult struct {
	Success           bool
	Message           string
	HandlerIdentifier string
}

type subscription struct {
	id      uuid.UUID
	handler EventHandler
}

// Bus delivers every published record to the subscribed handlers, synchronously and in subscription order.
type Bus struct {
	lock          sync.RWMutex
	subscriptions []subscription
	idWorker      *sonyflake.Sonyflake
}

func NewBus() *Bus {
	return &Bus{idWorker: common.NewIdWorker()}
}

func (b *Bus) Subscribe(handler EventHandler) uuid.UUID {
	id := uuid.New()
	b.lock.Lock()
	defer b.lock.Unlock()
	b.subscriptions = append(b.subscriptions, subscription{id: id, handler: handler})
	return id
}

func (b *Bus) Unsubscribe(id uuid.UUID) bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	for i, s := range b.subscriptions {
		if s.id == id {
			b.subscriptions = append(b.subscriptions[:i:i], b.subscriptions[i+1:]...)
			return true
		}
	}
	return false
}

// Publish stamps e with an id and the current time, then invokes the handlers. A nil bus drops the event.
func (b *Bus) Publish(e Event) *EventRecord {
	if b == nil {
		return nil
	}
	record := CreateEvent(b.idWorker, e.SourceType, e.SourceId, e.SourceDesc, e.EventCategory,
		e.UpdatedProperties, e.UpdatedRelations, types.CurrentTimestamp())
	b.InvokeHandlers(record)
	return record
}

func (b *Bus) InvokeHandlers(record *EventRecord) []EventHandleResult {
	b.lock.RLock()
	handlers := make([]EventHandler, 0, len(b.subscriptions))
	for _, s := range b.subscriptions {
		handlers = append(handlers, s.handler)
	}
	b.lock.RUnlock()

	results := []EventHandleResult{}
	for _, handler := range handlers {
		logrus.Debug("pre handle event ", record.Event)
		r := handler(record)

		if r == nil {
			continue
		}

		results = append(results, *r)

		if r.Success {
			logrus.Debug("post handle event. ", r)
		} else {
			logrus.Error("post handler error. ", r)
		}
	}
	return results
}
