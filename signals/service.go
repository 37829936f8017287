package signals

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

// Service layers event publication over the store: every successful append
// is announced on the broker so the push hub can fan it out. The publish is
// asynchronous; callers do not wait on delivery.
type Service struct {
	log    log.FieldLogger
	store  *Store
	events domain.EventsBroker
}

func NewService(store *Store, events domain.EventsBroker) *Service {
	return &Service{
		log:    log.StandardLogger(),
		store:  store,
		events: events,
	}
}

func (s *Service) WithLogger(lg log.FieldLogger) *Service {
	s.log = lg
	return s
}

func (s *Service) List(symbol string) []domain.Signal {
	return s.store.List(symbol)
}

func (s *Service) Add(
	ctx context.Context,
	symbol string,
	sig domain.Signal,
) (domain.Signal, error) {
	stored, err := s.store.Append(symbol, sig)
	if err != nil {
		return domain.Signal{}, err
	}

	s.log.WithFields(log.Fields{
		"symbol": symbol,
		"type":   stored.Type,
	}).Info("signal appended")

	s.events.Publish(
		domain.EvTypeSignals,
		domain.NewEvent(ctx, domain.NewSignalEvent(symbol, stored)),
	)
	return stored, nil
}
