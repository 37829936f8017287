package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/infra/broker"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) domain.SignalEvent {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev domain.SignalEvent
	require.NoError(t, json.Unmarshal(payload, &ev))
	return ev
}

func waitClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ClientCount() == want
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub, srv := newTestHub(t)

	first := dial(t, srv)
	second := dial(t, srv)
	waitClients(t, hub, 2)

	sent := domain.NewSignalEvent("XAUUSD", domain.Signal{
		Time:  "2024-03-05T10:00:00Z",
		Type:  domain.SignalBuy,
		Price: 1900.5,
		Note:  "test",
	})
	hub.BroadcastSignal(context.Background(), sent)

	for _, conn := range []*websocket.Conn{first, second} {
		got := readEvent(t, conn)
		assert.Equal(t, domain.SignalEventType, got.Type)
		assert.Equal(t, "XAUUSD", got.Symbol)
		assert.Equal(t, sent.Signal, got.Signal)
	}
}

func TestHub_LateJoinerMissesEarlierBroadcasts(t *testing.T) {
	hub, srv := newTestHub(t)

	early := dial(t, srv)
	waitClients(t, hub, 1)

	hub.BroadcastSignal(context.Background(),
		domain.NewSignalEvent("XAUUSD", domain.Signal{Type: domain.SignalBuy, Price: 1}))
	require.Equal(t, domain.SignalBuy, readEvent(t, early).Signal.Type)

	late := dial(t, srv)
	waitClients(t, hub, 2)

	hub.BroadcastSignal(context.Background(),
		domain.NewSignalEvent("XAUUSD", domain.Signal{Type: domain.SignalSell, Price: 2}))

	// The first frame the late client ever sees is the second broadcast.
	assert.Equal(t, domain.SignalSell, readEvent(t, late).Signal.Type)
	assert.Equal(t, domain.SignalSell, readEvent(t, early).Signal.Type)
}

func TestHub_DisconnectedClientIsRemoved(t *testing.T) {
	hub, srv := newTestHub(t)

	conn := dial(t, srv)
	waitClients(t, hub, 1)

	conn.Close()
	waitClients(t, hub, 0)
}

func TestHub_SubscribeSignals(t *testing.T) {
	hub, srv := newTestHub(t)

	events := broker.NewInMemory()
	hub.SubscribeSignals(events)

	conn := dial(t, srv)
	waitClients(t, hub, 1)

	sig := domain.Signal{Time: "2024-03-05T10:00:00Z", Type: domain.SignalInfo, Price: 1910}
	events.Publish(domain.EvTypeSignals,
		domain.NewEvent(context.Background(), domain.NewSignalEvent("EURUSD", sig)))

	got := readEvent(t, conn)
	assert.Equal(t, "EURUSD", got.Symbol)
	assert.Equal(t, sig, got.Signal)
}
