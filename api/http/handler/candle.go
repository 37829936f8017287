package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/candle"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

const (
	defaultLimit    = 200
	maxLimit        = 1000
	defaultLookback = 50
)

type CandleHandler struct {
	candles    *candle.Service
	twelvedata bool
	finnhub    bool
}

func NewCandleHandler(candles *candle.Service, twelvedata, finnhub bool) *CandleHandler {
	return &CandleHandler{candles: candles, twelvedata: twelvedata, finnhub: finnhub}
}

// chartError is the degraded 502 response: empty series plus the raw
// upstream payload, never synthetic stand-in data.
type chartError struct {
	Symbol  string          `json:"symbol"`
	Candles []domain.Candle `json:"candles"`
	Error   string          `json:"error"`
}

func (h *CandleHandler) GetCandles(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = domain.Interval1Min
	}
	limit, err := parseLimit(r.URL.Query().Get("limit"), defaultLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	candles, err := h.candles.GetCandles(r.Context(), symbol, interval, limit)
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			writeJSON(w, http.StatusBadGateway, chartError{
				Symbol:  symbol,
				Candles: []domain.Candle{},
				Error:   string(upstream.Payload),
			})
			return
		}
		writeJSON(w, http.StatusBadGateway, chartError{
			Symbol:  symbol,
			Candles: []domain.Candle{},
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, domain.Chart{Symbol: symbol, Candles: candles})
}

func (h *CandleHandler) GetMaxMin(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = domain.Interval1Min
	}
	lookback, err := parseLimit(r.URL.Query().Get("lookback"), defaultLookback)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	candles, err := h.candles.GetCandles(r.Context(), symbol, interval, lookback)
	if err != nil || len(candles) == 0 {
		writeError(w, http.StatusNotFound, "no candles")
		return
	}

	highest := candles[0].High
	lowest := candles[0].Low
	for _, c := range candles[1:] {
		if c.High > highest {
			highest = c.High
		}
		if c.Low < lowest {
			lowest = c.Low
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":     symbol,
		"highest":    highest,
		"lowest":     lowest,
		"last_close": candles[len(candles)-1].Close,
	})
}

// GetConfig reports which provider keys are configured, without exposing
// them.
func (h *CandleHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"twelvedata": h.twelvedata,
		"finnhub":    h.finnhub,
	})
}

func parseLimit(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("limit must be a number")
	}
	if limit < 1 || limit > maxLimit {
		return 0, errors.Errorf("limit must be between 1 and %d", maxLimit)
	}
	return limit, nil
}
