package detector

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

// Pair names one symbol/interval combination the scheduler watches.
type Pair struct {
	Symbol   string `json:"symbol"`
	Interval string `json:"interval"`
	Limit    int    `json:"limit,omitempty"`
}

const (
	defaultPairLimit = 200
	// DefaultEvery is the scheduler period when the caller supplies none.
	DefaultEvery = 60 * time.Second
)

// Scheduler periodically runs the detector for a set of pairs. Start is
// idempotent while a loop is live; Stop cancels the loop and is safe to call
// at any time.
type Scheduler struct {
	runner *Service
	log    log.FieldLogger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewScheduler(runner *Service) *Scheduler {
	return &Scheduler{
		runner: runner,
		log:    log.StandardLogger(),
	}
}

func (s *Scheduler) WithLogger(lg log.FieldLogger) *Scheduler {
	s.log = lg
	return s
}

// Start launches the loop and reports whether a new loop was started.
func (s *Scheduler) Start(ctx context.Context, pairs []Pair, every time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return false
	}
	if every <= 0 {
		every = DefaultEvery
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go s.loop(loopCtx, pairs, every)
	return true
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Scheduler) loop(ctx context.Context, pairs []Pair, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, pair := range pairs {
				interval := pair.Interval
				if interval == "" {
					interval = domain.Interval1Min
				}
				limit := pair.Limit
				if limit <= 0 {
					limit = defaultPairLimit
				}
				if _, err := s.runner.Run(ctx, pair.Symbol, interval, limit); err != nil {
					s.log.WithError(err).WithField("symbol", pair.Symbol).
						Warn("scheduled detector run failed")
				}
			}
		}
	}
}
