package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

const defaultBaseURL = "https://finnhub.io"

const providerName = "finnhub"

var _ domain.CandleProvider = (*Client)(nil)

// Client calls the Finnhub forex candle endpoint, used as the fallback when
// TwelveData is unavailable.
type Client struct {
	http *resty.Client
	key  string
	now  func() time.Time
}

func New(key string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().SetBaseURL(defaultBaseURL).SetTimeout(timeout),
		key:  key,
		now:  time.Now,
	}
}

// WithBaseURL points the client at a different host, used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.http.SetBaseURL(baseURL)
	return c
}

func (c *Client) Name() string { return providerName }

// candleResponse mirrors Finnhub's column-oriented candle payload.
type candleResponse struct {
	Status string    `json:"s"`
	Times  []int64   `json:"t"`
	Opens  []float64 `json:"o"`
	Highs  []float64 `json:"h"`
	Lows   []float64 `json:"l"`
	Closes []float64 `json:"c"`
	Vols   []float64 `json:"v"`
}

// Candles fetches a limit-sized window ending now. Finnhub wants explicit
// from/to epoch bounds, so the window is derived from the interval duration.
func (c *Client) Candles(
	ctx context.Context,
	symbol, interval string,
	limit int,
) ([]domain.Candle, error) {
	step := domain.IntervalDuration(interval)
	if step == 0 {
		step = time.Minute
	}
	to := c.now().UTC()
	from := to.Add(-step * time.Duration(limit))

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":     symbol,
			"resolution": domain.FinnhubResolution(interval),
			"from":       strconv.FormatInt(from.Unix(), 10),
			"to":         strconv.FormatInt(to.Unix(), 10),
			"token":      c.key,
		}).
		Get("/api/v1/forex/candle")
	if err != nil {
		return nil, errors.Wrap(err, "finnhub: candle request")
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, domain.NewUpstreamError(
			providerName,
			fmt.Sprintf("unexpected status %d", resp.StatusCode()),
			resp.Body(),
		)
	}

	var payload candleResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, domain.NewUpstreamError(providerName, "malformed response body", resp.Body())
	}
	if payload.Status != "ok" || len(payload.Times) == 0 {
		return nil, domain.NewUpstreamError(providerName, "status not ok", resp.Body())
	}

	count := len(payload.Times)
	candles := make([]domain.Candle, 0, count)
	for i := 0; i < count; i++ {
		candle := domain.Candle{
			Time:  time.Unix(payload.Times[i], 0).UTC(),
			Open:  column(payload.Opens, i),
			High:  column(payload.Highs, i),
			Low:   column(payload.Lows, i),
			Close: column(payload.Closes, i),
		}
		if i < len(payload.Vols) {
			candle.Volume = payload.Vols[i]
		}
		candles = append(candles, candle)
	}
	if len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}
	return candles, nil
}

func column(col []float64, i int) float64 {
	if i < len(col) {
		return col[i]
	}
	return 0
}
