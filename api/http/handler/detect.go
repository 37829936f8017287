package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/detector"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

type DetectHandler struct {
	runner *detector.Service
	sched  *detector.Scheduler
}

func NewDetectHandler(runner *detector.Service, sched *detector.Scheduler) *DetectHandler {
	return &DetectHandler{runner: runner, sched: sched}
}

// Detect triggers one detector pass and returns the generated signals.
func (h *DetectHandler) Detect(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = domain.Interval1Min
	}

	result, err := h.runner.Run(r.Context(), symbol, interval, defaultLimit)
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			writeError(w, http.StatusBadGateway, upstream.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type schedulerStartRequest struct {
	Pairs           []detector.Pair `json:"pairs"`
	IntervalSeconds int             `json:"interval_seconds"`
}

func (h *DetectHandler) SchedulerStart(w http.ResponseWriter, r *http.Request) {
	var req schedulerStartRequest
	if r.Body != nil {
		// Body is optional; defaults apply when absent or empty.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if len(req.Pairs) == 0 {
		req.Pairs = []detector.Pair{{Symbol: "XAUUSD", Interval: domain.Interval1Min}}
	}
	every := time.Duration(req.IntervalSeconds) * time.Second
	if every <= 0 {
		every = detector.DefaultEvery
	}

	// The loop is scoped to the process, not to this request.
	started := h.sched.Start(context.Background(), req.Pairs, every)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":               true,
		"started":          started,
		"started_for":      req.Pairs,
		"interval_seconds": int(every / time.Second),
	})
}

func (h *DetectHandler) SchedulerStop(w http.ResponseWriter, r *http.Request) {
	h.sched.Stop()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"stopped": true,
	})
}
