package broker

import (
	log "github.com/sirupsen/logrus"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

var _ domain.EventsBroker = new(EventsInMemory)

// EventsInMemory is an in-memory manager which stores subscriptions and runs
// handlers as separate goroutines. Subscriptions happen once during startup
// wiring, so the subscriber map itself needs no locking afterwards.
type EventsInMemory struct {
	log         log.FieldLogger
	subscribers map[domain.EventType][]domain.EventHandler
}

func NewInMemory() *EventsInMemory {
	return &EventsInMemory{
		log:         log.StandardLogger(),
		subscribers: make(map[domain.EventType][]domain.EventHandler),
	}
}

func (ps *EventsInMemory) WithLogger(lg log.FieldLogger) *EventsInMemory {
	ps.log = lg
	return ps
}

func (ps *EventsInMemory) Subscribe(
	tp domain.EventType,
	h domain.EventHandler,
) {
	if tp == "" || h == nil {
		return
	}

	ps.subscribers[tp] = append(ps.subscribers[tp], h)
}

// Publish hands the event to every subscriber on its own goroutine. Handler
// failures are logged, never propagated to the publisher: a broken push
// connection must not fail the request that triggered the event.
func (ps *EventsInMemory) Publish(tp domain.EventType, ev *domain.Event) {
	for _, handler := range ps.subscribers[tp] {
		currHandler := handler

		go func() {
			defer func() {
				if r := recover(); r != nil {
					ps.log.Errorf(
						"panic while executing handler for %s events: %+v",
						tp, r,
					)
				}
			}()

			if err := currHandler(ev); err != nil {
				ps.log.Errorf(
					"error while executing handler for %s events: %v",
					tp, err,
				)
			}
		}()
	}
}
