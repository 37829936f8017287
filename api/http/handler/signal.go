package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/signals"
)

type SignalHandler struct {
	signals *signals.Service
}

func NewSignalHandler(signalService *signals.Service) *SignalHandler {
	return &SignalHandler{signals: signalService}
}

func (h *SignalHandler) List(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":  symbol,
		"signals": h.signals.List(symbol),
	})
}

// addSignalRequest uses a pointer price so an absent field is
// distinguishable from a zero one.
type addSignalRequest struct {
	Time  string   `json:"time"`
	Type  string   `json:"type"`
	Price *float64 `json:"price"`
	Note  string   `json:"note"`
}

func (h *SignalHandler) Add(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	var req addSignalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Type == "" {
		writeError(w, http.StatusBadRequest, "type is required")
		return
	}
	if req.Price == nil {
		writeError(w, http.StatusBadRequest, "price is required")
		return
	}

	stored, err := h.signals.Add(r.Context(), symbol, domain.Signal{
		Time:  req.Time,
		Type:  req.Type,
		Price: *req.Price,
		Note:  req.Note,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"signal": stored,
	})
}
