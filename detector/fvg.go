package detector

import (
	"math"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

const fvgEpsilon = 1e-9

// DetectFVG identifies fair value gaps: consecutive candles whose bodies do
// not overlap at all. The detection price is the midpoint of the gap and the
// strength is the gap width.
func DetectFVG(candles []domain.Candle) []Detection {
	detections := []Detection{}
	for i := 1; i < len(candles)-1; i++ {
		a := candles[i-1]
		b := candles[i]

		aLow := math.Min(a.Open, a.Close)
		aHigh := math.Max(a.Open, a.Close)
		bLow := math.Min(b.Open, b.Close)
		bHigh := math.Max(b.Open, b.Close)

		switch {
		case bLow > aHigh+fvgEpsilon:
			detections = append(detections, Detection{
				Type:     TypeFVGBull,
				Index:    i,
				Price:    (aHigh + bLow) / 2,
				Strength: bLow - aHigh,
				Desc:     "bull fair value gap",
			})
		case bHigh < aLow-fvgEpsilon:
			detections = append(detections, Detection{
				Type:     TypeFVGBear,
				Index:    i,
				Price:    (aLow + bHigh) / 2,
				Strength: aLow - bHigh,
				Desc:     "bear fair value gap",
			})
		}
	}
	return detections
}
