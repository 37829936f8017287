package candle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

// Cache keeps the last successful provider response per symbol and interval
// as a JSON snapshot on disk, one file each.
type Cache struct {
	dir string
}

type snapshot struct {
	Symbol   string          `json:"symbol"`
	Interval string          `json:"interval"`
	Candles  []domain.Candle `json:"candles"`
}

func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create candle cache dir")
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) Put(symbol, interval string, candles []domain.Candle) error {
	data, err := json.Marshal(snapshot{
		Symbol:   symbol,
		Interval: interval,
		Candles:  candles,
	})
	if err != nil {
		return errors.Wrap(err, "marshal candle snapshot")
	}
	if err := os.WriteFile(c.path(symbol, interval), data, 0o644); err != nil {
		return errors.Wrap(err, "write candle snapshot")
	}
	return nil
}

func (c *Cache) Get(symbol, interval string) ([]domain.Candle, error) {
	data, err := os.ReadFile(c.path(symbol, interval))
	if err != nil {
		return nil, errors.Wrap(err, "read candle snapshot")
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "decode candle snapshot")
	}
	return snap.Candles, nil
}

func (c *Cache) path(symbol, interval string) string {
	safe := strings.ReplaceAll(symbol, "/", "_")
	return filepath.Join(c.dir, safe+"_"+interval+".json")
}
