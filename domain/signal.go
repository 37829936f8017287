package domain

// Signal is a user- or detector-submitted chart annotation. Time is kept as
// the ISO-8601 string the caller supplied; the store fills it in when absent.
// Signals are append-only: there is no update or delete path.
type Signal struct {
	Time  string  `json:"time"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
	Note  string  `json:"note"`
}

const (
	SignalBuy  = "buy"
	SignalSell = "sell"
	SignalInfo = "info"
)

// SignalEvent is the wire form pushed to websocket subscribers whenever a
// signal is appended.
type SignalEvent struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
	Signal Signal `json:"signal"`
}

const SignalEventType = "signal"

func NewSignalEvent(symbol string, sig Signal) SignalEvent {
	return SignalEvent{Type: SignalEventType, Symbol: symbol, Signal: sig}
}
