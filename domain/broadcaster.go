package domain

import "context"

// Broadcaster fans a signal event out to every currently connected push
// client. Delivery is best effort: a failed send drops that client only.
type Broadcaster interface {
	BroadcastSignal(ctx context.Context, ev SignalEvent)
}
