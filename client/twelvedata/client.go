package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

const defaultBaseURL = "https://api.twelvedata.com"

const providerName = "twelvedata"

var _ domain.CandleProvider = (*Client)(nil)

// Client calls the TwelveData time_series endpoint. One synchronous round
// trip per request: no caching, no retry, no rate limiting here.
type Client struct {
	http *resty.Client
	key  string
}

func New(key string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().SetBaseURL(defaultBaseURL).SetTimeout(timeout),
		key:  key,
	}
}

// WithBaseURL points the client at a different host, used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.http.SetBaseURL(baseURL)
	return c
}

func (c *Client) Name() string { return providerName }

// timeSeriesValue mirrors one element of the provider's "values" array.
// Numeric fields arrive as strings.
type timeSeriesValue struct {
	Datetime  string `json:"datetime"`
	Timestamp string `json:"timestamp"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Volume    string `json:"volume"`
}

type timeSeriesResponse struct {
	Values []timeSeriesValue `json:"values"`
}

// Candles fetches up to limit bars and returns them oldest first. The
// provider responds newest first, so the series is reversed. A response
// without the expected "values" field is an UpstreamError carrying the raw
// payload.
func (c *Client) Candles(
	ctx context.Context,
	symbol, interval string,
	limit int,
) ([]domain.Candle, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":     symbol,
			"interval":   domain.NormalizeInterval(interval),
			"outputsize": strconv.Itoa(limit),
			"format":     "JSON",
			"apikey":     c.key,
		}).
		Get("/time_series")
	if err != nil {
		return nil, errors.Wrap(err, "twelvedata: time_series request")
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, domain.NewUpstreamError(
			providerName,
			fmt.Sprintf("unexpected status %d", resp.StatusCode()),
			resp.Body(),
		)
	}

	var payload timeSeriesResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, domain.NewUpstreamError(providerName, "malformed response body", resp.Body())
	}
	if len(payload.Values) == 0 {
		return nil, domain.NewUpstreamError(providerName, "response has no values", resp.Body())
	}

	candles := make([]domain.Candle, 0, len(payload.Values))
	for i := len(payload.Values) - 1; i >= 0; i-- {
		candle, err := payload.Values[i].toCandle()
		if err != nil {
			return nil, domain.NewUpstreamError(providerName, err.Error(), resp.Body())
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

func (v timeSeriesValue) toCandle() (domain.Candle, error) {
	raw := v.Datetime
	if raw == "" {
		raw = v.Timestamp
	}
	t, err := parseTime(raw)
	if err != nil {
		return domain.Candle{}, err
	}

	candle := domain.Candle{Time: t}
	for _, field := range []struct {
		raw string
		dst *float64
	}{
		{v.Open, &candle.Open},
		{v.High, &candle.High},
		{v.Low, &candle.Low},
		{v.Close, &candle.Close},
		{v.Volume, &candle.Volume},
	} {
		val, err := parseNumber(field.raw)
		if err != nil {
			return domain.Candle{}, err
		}
		*field.dst = val
	}
	return candle, nil
}

// parseNumber coerces the provider's string numerics to float64. Absent
// fields (volume for FX symbols) default to zero.
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parse numeric field %q", s)
	}
	return d.InexactFloat64(), nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("value has no datetime")
	}
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	// Some plans return epoch seconds instead of a datetime string.
	if sec, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	return time.Time{}, errors.Errorf("unparseable datetime %q", raw)
}
