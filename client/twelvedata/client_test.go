package twelvedata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

func TestClient_Candles(t *testing.T) {
	ctx := context.Background()

	t.Run("reverses newest-first values", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/time_series", r.URL.Path)
			assert.Equal(t, "XAU/USD", r.URL.Query().Get("symbol"))
			assert.Equal(t, "1min", r.URL.Query().Get("interval"))
			assert.Equal(t, "2", r.URL.Query().Get("outputsize"))
			assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"values":[
				{"datetime":"2024-03-05 10:01:00","open":"1901.0","high":"1902.5","low":"1900.5","close":"1902.0","volume":"120"},
				{"datetime":"2024-03-05 10:00:00","open":"1900.0","high":"1901.5","low":"1899.5","close":"1901.0","volume":"100"}
			]}`))
		}))
		defer srv.Close()

		client := New("test-key", time.Second).WithBaseURL(srv.URL)
		candles, err := client.Candles(ctx, "XAU/USD", "1m", 2)
		require.NoError(t, err)
		require.Len(t, candles, 2)

		assert.Equal(t, domain.Candle{
			Time:   time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			Open:   1900.0,
			High:   1901.5,
			Low:    1899.5,
			Close:  1901.0,
			Volume: 100,
		}, candles[0])
		assert.True(t, candles[1].Time.After(candles[0].Time))
	})

	t.Run("missing values is an upstream error with raw payload", func(t *testing.T) {
		payload := `{"code":429,"message":"rate limited"}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))
		defer srv.Close()

		client := New("test-key", time.Second).WithBaseURL(srv.URL)
		_, err := client.Candles(ctx, "XAU/USD", "1min", 5)
		require.Error(t, err)

		var upstream *domain.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, "twelvedata", upstream.Provider)
		assert.Equal(t, payload, string(upstream.Payload))
	})

	t.Run("non-200 status is an upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("provider down"))
		}))
		defer srv.Close()

		client := New("test-key", time.Second).WithBaseURL(srv.URL)
		_, err := client.Candles(ctx, "XAU/USD", "1min", 5)

		var upstream *domain.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, "provider down", string(upstream.Payload))
	})

	t.Run("empty volume coerces to zero", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"values":[
				{"datetime":"2024-03-05 10:00:00","open":"1.1","high":"1.2","low":"1.0","close":"1.15","volume":""}
			]}`))
		}))
		defer srv.Close()

		client := New("test-key", time.Second).WithBaseURL(srv.URL)
		candles, err := client.Candles(ctx, "EUR/USD", "1min", 1)
		require.NoError(t, err)
		require.Len(t, candles, 1)
		assert.Zero(t, candles[0].Volume)
	})
}

func TestParseTime(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-05 10:00:00":  time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		"2024-03-05T10:00:00Z": time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		"2024-03-05":           time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		"1709632800":           time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		got, err := parseTime(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
	}

	_, err := parseTime("not-a-time")
	assert.Error(t, err)

	_, err = parseTime("")
	assert.Error(t, err)
}
