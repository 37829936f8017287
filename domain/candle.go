package domain

import (
	"context"
	"time"
)

// Candle is one OHLCV bar for a time bucket. Candles are ephemeral: they are
// recomputed per request and never persisted by this service (the snapshot
// cache keeps provider responses, not service state).
type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Chart is the candle payload returned to the frontend.
type Chart struct {
	Symbol  string   `json:"symbol"`
	Candles []Candle `json:"candles"`
}

// CandleProvider fetches an ordered (oldest first) series of bars from an
// external market-data API.
type CandleProvider interface {
	Name() string
	Candles(ctx context.Context, symbol, interval string, limit int) ([]Candle, error)
}

// Closes extracts the close series from a chronological candle slice.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}
