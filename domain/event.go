package domain

import "context"

type EventType = string

const (
	EvTypeSignals EventType = "signals"
)

type EventHandler = func(e *Event) error

// EventsBroker describes the abstract pub-sub messaging system for internal
// events among components. The append path publishes, the push hub subscribes.
type EventsBroker interface {
	Subscribe(tp EventType, h EventHandler)
	Publish(tp EventType, e *Event)
}

type Event struct {
	Ctx     context.Context
	payload interface{}
}

func NewEvent(ctx context.Context, payload interface{}) *Event {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Event{
		Ctx:     ctx,
		payload: payload,
	}
}

func (e *Event) Payload() interface{} {
	return e.payload
}

func (e *Event) MustGetSignalEvent() SignalEvent {
	return e.payload.(SignalEvent)
}
