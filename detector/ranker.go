package detector

import (
	"sort"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

const unknownPriority = 100

// priorities maps detection types to a static rank. Lower is higher
// priority: sweeps outrank false breakouts, which outrank gaps, which
// outrank structure reads.
var priorities = map[string]int{
	TypeLiqSweepHigh:   1,
	TypeLiqSweepLow:    1,
	TypeTurtleSoupSell: 2,
	TypeTurtleSoupBuy:  2,
	TypeFVGBull:        3,
	TypeFVGBear:        3,
	TypeMSUptrend:      4,
	TypeMSDowntrend:    4,
	TypeMSNoClear:      10,
}

// Rank assigns priorities and returns the detections sorted ascending by
// priority, preserving detection order within a priority class.
func Rank(detections []Detection) []Detection {
	ranked := make([]Detection, len(detections))
	copy(ranked, detections)
	for i := range ranked {
		p, ok := priorities[ranked[i].Type]
		if !ok {
			p = unknownPriority
		}
		ranked[i].Priority = p
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority < ranked[j].Priority
	})
	return ranked
}

// DetectAll runs every pattern detector over the series.
func DetectAll(candles []domain.Candle) []Detection {
	detections := []Detection{}
	detections = append(detections, DetectFVG(candles)...)
	detections = append(detections, DetectLiquidity(candles)...)
	detections = append(detections, DetectTurtleSoup(candles)...)
	detections = append(detections, DetectMarketStructure(candles)...)
	return detections
}
