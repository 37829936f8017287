package detector

import "github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"

// DetectMarketStructure classifies the last four closes as uptrend,
// downtrend, or no clear structure. It always yields exactly one detection
// once enough candles exist, anchored on the last bar.
func DetectMarketStructure(candles []domain.Candle) []Detection {
	if len(candles) < 5 {
		return []Detection{}
	}

	closes := domain.Closes(candles)
	last4 := closes[len(closes)-4:]
	lastIdx := len(candles) - 1

	rising, falling := true, true
	for i := 1; i < len(last4); i++ {
		if last4[i] <= last4[i-1] {
			rising = false
		}
		if last4[i] >= last4[i-1] {
			falling = false
		}
	}

	det := Detection{
		Type:  TypeMSNoClear,
		Index: lastIdx,
		Price: last4[len(last4)-1],
		Desc:  "no clear market structure (range/sideways)",
	}
	switch {
	case rising:
		det.Type = TypeMSUptrend
		det.Desc = "higher highs and higher lows (uptrend)"
	case falling:
		det.Type = TypeMSDowntrend
		det.Desc = "lower highs and lower lows (downtrend)"
	}
	return []Detection{det}
}
