package signals

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

// Store persists every signal in a single JSON document mapping symbol to an
// ordered list, append order preserved. Every append rewrites the whole
// document, so cost grows with total stored signals; there is no rotation or
// compaction. All mutations are serialized behind the mutex, so two
// concurrent appends can never lose each other's write.
type Store struct {
	mu   sync.Mutex
	log  log.FieldLogger
	path string
	now  func() time.Time
}

func NewStore(path string) (*Store, error) {
	s := &Store{
		log:  log.StandardLogger(),
		path: path,
		now:  time.Now,
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
			return nil, errors.Wrap(err, "initialize signals document")
		}
	}
	return s, nil
}

func (s *Store) WithLogger(lg log.FieldLogger) *Store {
	s.log = lg
	return s
}

// List returns the stored signals for symbol, empty if unseen. It never
// errors: an unreadable document reads as empty.
func (s *Store) List(symbol string) []domain.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.read()[symbol]
	if list == nil {
		return []domain.Signal{}
	}
	return list
}

// Append stores sig as the last element of the symbol's list and returns the
// stored record. A missing time field is filled with the current UTC
// timestamp; a caller-supplied time is preserved verbatim.
func (s *Store) Append(symbol string, sig domain.Signal) (domain.Signal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sig.Time == "" {
		sig.Time = s.now().UTC().Format(time.RFC3339)
	}

	doc := s.read()
	doc[symbol] = append(doc[symbol], sig)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.Signal{}, errors.Wrap(err, "marshal signals document")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return domain.Signal{}, errors.Wrap(err, "write signals document")
	}
	return sig, nil
}

// read loads the whole document. Read failures are deliberately lossy: the
// document is treated as empty so a corrupt file never fails a request. The
// condition is logged so corruption stays visible.
func (s *Store) read() map[string][]domain.Signal {
	doc := make(map[string][]domain.Signal)

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.WithError(err).WithField("path", s.path).
			Warn("signals document unreadable, treating as empty")
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.WithError(err).WithField("path", s.path).
			Warn("signals document corrupt, treating as empty")
		return make(map[string][]domain.Signal)
	}
	return doc
}
