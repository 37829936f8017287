package domain

import "time"

const Interval1Min = "1min"
const Interval5Min = "5min"
const Interval15Min = "15min"
const Interval30Min = "30min"
const Interval60Min = "60min"
const Interval1Day = "1day"

func GetAvailableIntervals() []string {
	return []string{
		Interval1Min,
		Interval5Min,
		Interval15Min,
		Interval30Min,
		Interval60Min,
		Interval1Day,
	}
}

// NormalizeInterval maps chart-style aliases ("1m", "1h", "1d") onto the
// provider interval names used everywhere else in the service. Unknown values
// pass through untouched so the provider gets a chance to reject them.
func NormalizeInterval(interval string) string {
	aliases := map[string]string{
		"1m":  Interval1Min,
		"5m":  Interval5Min,
		"15m": Interval15Min,
		"30m": Interval30Min,
		"60m": Interval60Min,
		"1h":  Interval60Min,
		"1d":  Interval1Day,
	}
	if normalized, ok := aliases[interval]; ok {
		return normalized
	}
	return interval
}

func IntervalDuration(interval string) time.Duration {
	int2dur := map[string]time.Duration{
		Interval1Min:  time.Minute,
		Interval5Min:  5 * time.Minute,
		Interval15Min: 15 * time.Minute,
		Interval30Min: 30 * time.Minute,
		Interval60Min: 60 * time.Minute,
		Interval1Day:  1440 * time.Minute,
	}

	return int2dur[NormalizeInterval(interval)]
}

// FinnhubResolution maps an interval onto Finnhub's candle resolution codes.
func FinnhubResolution(interval string) string {
	int2res := map[string]string{
		Interval1Min:  "1",
		Interval5Min:  "5",
		Interval15Min: "15",
		Interval30Min: "30",
		Interval60Min: "60",
		Interval1Day:  "D",
	}
	if res, ok := int2res[NormalizeInterval(interval)]; ok {
		return res
	}
	return "1"
}
