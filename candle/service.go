package candle

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

// Service resolves candle series for the facade. Providers are tried in
// order; on success the series is snapshotted to the cache, on total failure
// the cache is consulted before the upstream error is surfaced. With no
// providers configured the service runs in synthetic mode.
type Service struct {
	log       log.FieldLogger
	providers []domain.CandleProvider
	cache     *Cache
}

func NewService(providers []domain.CandleProvider, cache *Cache) *Service {
	return &Service{
		log:       log.StandardLogger(),
		providers: providers,
		cache:     cache,
	}
}

func (s *Service) WithLogger(lg log.FieldLogger) *Service {
	s.log = lg
	return s
}

// Synthetic reports whether the service has no provider configured and
// serves generated placeholder bars.
func (s *Service) Synthetic() bool {
	return len(s.providers) == 0
}

func (s *Service) GetCandles(
	ctx context.Context,
	symbol, interval string,
	limit int,
) ([]domain.Candle, error) {
	interval = domain.NormalizeInterval(interval)

	if s.Synthetic() {
		return SyntheticSeries(limit, nowUTC()), nil
	}

	var lastErr error
	for _, provider := range s.providers {
		candles, err := provider.Candles(ctx, symbol, interval, limit)
		if err != nil {
			s.log.WithError(err).WithFields(log.Fields{
				"provider": provider.Name(),
				"symbol":   symbol,
			}).Warn("provider fetch failed")
			lastErr = err
			continue
		}

		if s.cache != nil {
			if err := s.cache.Put(symbol, interval, candles); err != nil {
				s.log.WithError(err).Warn("candle cache write failed")
			}
		}
		return candles, nil
	}

	// Every provider failed: a stale snapshot beats an empty chart.
	if s.cache != nil {
		if cached, err := s.cache.Get(symbol, interval); err == nil && len(cached) > 0 {
			s.log.WithFields(log.Fields{
				"symbol":   symbol,
				"interval": interval,
			}).Info("serving cached candles after provider failure")
			return cached, nil
		}
	}

	return nil, lastErr
}
