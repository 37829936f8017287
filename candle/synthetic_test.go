package candle

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticSeries(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 30, 42, 0, time.UTC)

	t.Run("count and spacing", func(t *testing.T) {
		candles := SyntheticSeries(5, now)
		require.Len(t, candles, 5)

		assert.Equal(t, time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), candles[4].Time)
		for i := 1; i < len(candles); i++ {
			assert.Equal(t, time.Minute, candles[i].Time.Sub(candles[i-1].Time))
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := SyntheticSeries(50, now)
		second := SyntheticSeries(50, now)
		assert.Equal(t, first, second)
	})

	t.Run("latest close is the seed", func(t *testing.T) {
		candles := SyntheticSeries(10, now)
		assert.Equal(t, syntheticSeedPrice, candles[len(candles)-1].Close)
	})

	t.Run("ohlc invariant", func(t *testing.T) {
		for _, c := range SyntheticSeries(30, now) {
			assert.LessOrEqual(t, c.Low, math.Min(c.Open, c.Close))
			assert.GreaterOrEqual(t, c.High, math.Max(c.Open, c.Close))
			assert.Greater(t, c.Volume, 0.0)
		}
	})

	t.Run("non-positive limit", func(t *testing.T) {
		assert.Empty(t, SyntheticSeries(0, now))
		assert.Empty(t, SyntheticSeries(-3, now))
	})
}
