package detector

import "github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"

const turtleSwingWindow = 5

// DetectTurtleSoup flags false breakouts: a candle trading beyond the swing
// extreme of the previous five bars but closing back inside the range.
func DetectTurtleSoup(candles []domain.Candle) []Detection {
	detections := []Detection{}
	if len(candles) < turtleSwingWindow+1 {
		return detections
	}
	for i := turtleSwingWindow; i < len(candles); i++ {
		window := candles[i-turtleSwingWindow : i]
		swingHigh := window[0].High
		swingLow := window[0].Low
		for _, c := range window[1:] {
			if c.High > swingHigh {
				swingHigh = c.High
			}
			if c.Low < swingLow {
				swingLow = c.Low
			}
		}

		c := candles[i]
		if c.High > swingHigh && c.Close < swingHigh {
			detections = append(detections, Detection{
				Type:  TypeTurtleSoupSell,
				Index: i,
				Price: c.High,
				Desc:  "false breakout above swing high",
			})
		}
		if c.Low < swingLow && c.Close > swingLow {
			detections = append(detections, Detection{
				Type:  TypeTurtleSoupBuy,
				Index: i,
				Price: c.Low,
				Desc:  "false breakout below swing low",
			})
		}
	}
	return detections
}
