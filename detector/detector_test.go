package detector

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

// dojiCandles builds one-minute bars whose open, high, low and close all sit
// at the given price, which keeps the pattern detectors quiet unless a test
// shapes a bar explicitly.
func dojiCandles(closes ...float64) []domain.Candle {
	base := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	out := make([]domain.Candle, len(closes))
	for i, price := range closes {
		out[i] = domain.Candle{
			Time:  base.Add(time.Duration(i) * time.Minute),
			Open:  price,
			High:  price,
			Low:   price,
			Close: price,
		}
	}
	return out
}

func TestSMA(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	got := SMA(values, 3)

	require.Len(t, got, 5)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 2.0, got[2], 1e-9)
	assert.InDelta(t, 3.0, got[3], 1e-9)
	assert.InDelta(t, 4.0, got[4], 1e-9)
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.0, mean([]float64{1, 2, 3}), 1e-9)
	assert.True(t, math.IsNaN(mean(nil)))
}
