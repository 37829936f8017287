package signals

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "signals.json"))
	require.NoError(t, err)
	return store
}

func TestStore_AppendAndList(t *testing.T) {
	store := newTestStore(t)

	t.Run("unseen symbol lists empty", func(t *testing.T) {
		assert.Equal(t, []domain.Signal{}, store.List("XAUUSD"))
	})

	t.Run("append becomes last element", func(t *testing.T) {
		first, err := store.Append("XAUUSD", domain.Signal{
			Time:  "2024-03-05T10:00:00Z",
			Type:  domain.SignalBuy,
			Price: 1900.5,
		})
		require.NoError(t, err)

		second, err := store.Append("XAUUSD", domain.Signal{
			Time:  "2024-03-05T10:05:00Z",
			Type:  domain.SignalSell,
			Price: 1905.0,
			Note:  "take profit",
		})
		require.NoError(t, err)

		list := store.List("XAUUSD")
		require.Len(t, list, 2)
		assert.Equal(t, first, list[0])
		assert.Equal(t, second, list[1])
	})

	t.Run("symbols are isolated", func(t *testing.T) {
		_, err := store.Append("EURUSD", domain.Signal{Type: domain.SignalBuy, Price: 1.08})
		require.NoError(t, err)
		assert.Len(t, store.List("EURUSD"), 1)
		assert.Len(t, store.List("XAUUSD"), 2)
	})
}

func TestStore_TimeDefaulting(t *testing.T) {
	store := newTestStore(t)
	fixed := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	t.Run("missing time gets server timestamp", func(t *testing.T) {
		stored, err := store.Append("XAUUSD", domain.Signal{Type: domain.SignalBuy, Price: 1900.5})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05T10:00:00Z", stored.Time)
	})

	t.Run("caller time is preserved verbatim", func(t *testing.T) {
		stored, err := store.Append("XAUUSD", domain.Signal{
			Time:  "2023-01-01T00:00:00+05:30",
			Type:  domain.SignalSell,
			Price: 1890,
		})
		require.NoError(t, err)
		assert.Equal(t, "2023-01-01T00:00:00+05:30", stored.Time)
	})
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.json")

	store, err := NewStore(path)
	require.NoError(t, err)
	stored, err := store.Append("XAUUSD", domain.Signal{Type: domain.SignalBuy, Price: 1900})
	require.NoError(t, err)

	reopened, err := NewStore(path)
	require.NoError(t, err)
	list := reopened.List("XAUUSD")
	require.Len(t, list, 1)
	assert.Equal(t, stored, list[0])
}

func TestStore_CorruptDocumentReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewStore(path)
	require.NoError(t, err)

	// Reads never hard-fail; the prior unreadable state is dropped.
	assert.Equal(t, []domain.Signal{}, store.List("XAUUSD"))

	_, err = store.Append("XAUUSD", domain.Signal{Type: domain.SignalBuy, Price: 1900})
	require.NoError(t, err)
	assert.Len(t, store.List("XAUUSD"), 1)
}
