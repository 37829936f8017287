package detector

import "math"

// Detection is one raw pattern hit over a candle series, before ranking.
// Index addresses the candle the pattern anchors on.
type Detection struct {
	Type     string  `json:"type"`
	Index    int     `json:"index"`
	Price    float64 `json:"price"`
	Strength float64 `json:"strength,omitempty"`
	Desc     string  `json:"desc"`
	Priority int     `json:"priority"`
}

const (
	TypeFVGBull        = "FVG_BULL"
	TypeFVGBear        = "FVG_BEAR"
	TypeLiqSweepHigh   = "LIQ_SWEEP_HIGH"
	TypeLiqSweepLow    = "LIQ_SWEEP_LOW"
	TypeTurtleSoupBuy  = "TURTLE_SOUP_BUY"
	TypeTurtleSoupSell = "TURTLE_SOUP_SELL"
	TypeMSUptrend      = "MS_UPTREND"
	TypeMSDowntrend    = "MS_DOWNTREND"
	TypeMSNoClear      = "MS_NO_CLEAR"
)

// SMA computes the simple moving average of values. Positions with fewer
// than period samples behind them are NaN.
func SMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if i+1 < period {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for _, v := range values[i+1-period : i+1] {
			sum += v
		}
		out[i] = sum / float64(period)
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func anyNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
