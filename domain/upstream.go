package domain

import "fmt"

// UpstreamError reports a failed or malformed market-data provider response.
// Payload carries the raw upstream body so the facade can surface it verbatim
// in the 502 response instead of substituting fabricated data.
type UpstreamError struct {
	Provider string
	Payload  []byte
	Reason   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %s", e.Provider, e.Reason)
}

func NewUpstreamError(provider, reason string, payload []byte) *UpstreamError {
	return &UpstreamError{Provider: provider, Reason: reason, Payload: payload}
}
