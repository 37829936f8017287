package candle

import (
	"math"
	"time"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

const (
	syntheticSeedPrice = 1900.0
	syntheticStep      = 1.5
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// SyntheticSeries generates limit placeholder bars ending at the current
// minute, walking backward from a fixed seed close in one-minute steps with
// an alternating ± step per bar. There is no randomness: two calls with the
// same limit inside the same minute are identical. Placeholder data only, not
// statistically realistic.
func SyntheticSeries(limit int, now time.Time) []domain.Candle {
	if limit <= 0 {
		return []domain.Candle{}
	}

	end := now.UTC().Truncate(time.Minute)
	candles := make([]domain.Candle, limit)

	closePrice := syntheticSeedPrice
	for back := 0; back < limit; back++ {
		direction := 1.0
		if back%2 == 1 {
			direction = -1.0
		}
		openPrice := closePrice - direction*syntheticStep

		i := limit - 1 - back
		candles[i] = domain.Candle{
			Time:   end.Add(-time.Duration(back) * time.Minute),
			Open:   openPrice,
			High:   math.Max(openPrice, closePrice) + syntheticStep/2,
			Low:    math.Min(openPrice, closePrice) - syntheticStep/2,
			Close:  closePrice,
			Volume: float64(1000 + (back%10)*25),
		}

		closePrice = openPrice
	}

	return candles
}
