package detector

import "github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"

// DetectLiquidity finds liquidity sweeps: a wick that takes out the previous
// extreme while the close settles back inside it (a failed breakout).
func DetectLiquidity(candles []domain.Candle) []Detection {
	detections := []Detection{}
	if len(candles) < 4 {
		return detections
	}
	for i := 2; i < len(candles); i++ {
		prev := candles[i-2]
		last := candles[i-1]

		if last.High > prev.High && last.Close < prev.High {
			detections = append(detections, Detection{
				Type:  TypeLiqSweepHigh,
				Index: i - 1,
				Price: last.High,
				Desc:  "liquidity sweep above previous high",
			})
		}
		if last.Low < prev.Low && last.Close > prev.Low {
			detections = append(detections, Detection{
				Type:  TypeLiqSweepLow,
				Index: i - 1,
				Price: last.Low,
				Desc:  "liquidity sweep below previous low",
			})
		}
	}
	return detections
}
