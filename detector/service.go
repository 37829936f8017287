package detector

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

type CandleGetter interface {
	GetCandles(ctx context.Context, symbol, interval string, limit int) ([]domain.Candle, error)
}

type SignalAdder interface {
	Add(ctx context.Context, symbol string, sig domain.Signal) (domain.Signal, error)
}

// Result reports one detector pass.
type Result struct {
	OK        bool            `json:"ok"`
	Reason    string          `json:"reason,omitempty"`
	Generated int             `json:"generated"`
	Signals   []domain.Signal `json:"signals"`
}

const (
	minCandles  = 20
	shortPeriod = 10
	longPeriod  = 21
	spikeRatio  = 1.01
	// Pattern hits anchored further back than this many bars are history,
	// not actionable signals; they are skipped when appending.
	recentBars = 3
)

// Service runs the lightweight detectors over fresh candles and appends every
// generated signal through the signal service, which also broadcasts it.
type Service struct {
	log     log.FieldLogger
	candles CandleGetter
	signals SignalAdder
	now     func() time.Time
}

func NewService(candles CandleGetter, signalAdder SignalAdder) *Service {
	return &Service{
		log:     log.StandardLogger(),
		candles: candles,
		signals: signalAdder,
		now:     time.Now,
	}
}

func (s *Service) WithLogger(lg log.FieldLogger) *Service {
	s.log = lg
	return s
}

func (s *Service) Run(
	ctx context.Context,
	symbol, interval string,
	limit int,
) (Result, error) {
	candles, err := s.candles.GetCandles(ctx, symbol, interval, limit)
	if err != nil {
		return Result{}, err
	}
	if len(candles) < minCandles {
		return Result{
			OK:      false,
			Reason:  fmt.Sprintf("not enough candles: %d", len(candles)),
			Signals: []domain.Signal{},
		}, nil
	}

	nowISO := s.now().UTC().Format(time.RFC3339)
	closes := domain.Closes(candles)
	price := closes[len(closes)-1]

	pending := []domain.Signal{}

	// SMA crossover at the last bar.
	short := SMA(closes, shortPeriod)
	long := SMA(closes, longPeriod)
	i := len(closes) - 1
	if !anyNaN(short[i-1], long[i-1], short[i], long[i]) {
		switch {
		case short[i-1] < long[i-1] && short[i] >= long[i]:
			pending = append(pending, domain.Signal{
				Time:  nowISO,
				Type:  domain.SignalBuy,
				Price: price,
				Note: fmt.Sprintf("sma%d crossed above sma%d (%.5f >= %.5f)",
					shortPeriod, longPeriod, short[i], long[i]),
			})
		case short[i-1] > long[i-1] && short[i] <= long[i]:
			pending = append(pending, domain.Signal{
				Time:  nowISO,
				Type:  domain.SignalSell,
				Price: price,
				Note: fmt.Sprintf("sma%d crossed below sma%d (%.5f <= %.5f)",
					shortPeriod, longPeriod, short[i], long[i]),
			})
		}
	}

	// Momentum spike: last close clears the previous five-close mean.
	prevAvg := mean(closes[len(closes)-6 : len(closes)-1])
	if price > prevAvg*spikeRatio {
		pending = append(pending, domain.Signal{
			Time:  nowISO,
			Type:  domain.SignalInfo,
			Price: price,
			Note:  fmt.Sprintf("price > prev5_avg * %.2f (%.5f)", spikeRatio, prevAvg),
		})
	}

	// Recent pattern hits, highest priority first. No-clear structure reads
	// carry no action and are not worth storing.
	for _, det := range Rank(DetectAll(candles)) {
		if det.Type == TypeMSNoClear || det.Index < len(candles)-recentBars {
			continue
		}
		pending = append(pending, domain.Signal{
			Time:  candles[det.Index].Time.UTC().Format(time.RFC3339),
			Type:  det.Type,
			Price: det.Price,
			Note:  det.Desc,
		})
	}

	stored := make([]domain.Signal, 0, len(pending))
	for _, sig := range pending {
		rec, err := s.signals.Add(ctx, symbol, sig)
		if err != nil {
			return Result{}, err
		}
		stored = append(stored, rec)
	}

	s.log.WithFields(log.Fields{
		"symbol":    symbol,
		"interval":  interval,
		"generated": len(stored),
	}).Info("detector run complete")

	return Result{OK: true, Generated: len(stored), Signals: stored}, nil
}
