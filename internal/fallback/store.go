// Package fallback is the in-process store used when no backend is
// configured or the backend fails. It keeps properties and contact inquiries
// so search and contact intake keep working during local development and
// degraded operation.
//
// State lives in memory. When a path is configured it is also written to a
// JSON file after every mutation and read back on startup.
package fallback

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/rs/zerolog"
)

// Options configures a Store.
type Options struct {
	// Path of the JSON state file. Empty keeps state for the process lifetime.
	Path string

	// Seed is used when there is no state file yet.
	Seed []model.Property

	Logger *zerolog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Store holds the fallback collections.
type Store struct {
	mu         sync.RWMutex
	properties *Collection[model.Property]
	contacts   *Collection[model.ContactInquiry]

	path   string
	logger zerolog.Logger
	now    func() time.Time
}

// snapshot is the file layout. Each collection is decoded on its own so a
// corrupt one does not take the other down.
type snapshot struct {
	Properties json.RawMessage `json:"properties"`
	Contacts   json.RawMessage `json:"contacts"`
}

func propertyID(p model.Property) string      { return p.ID }
func contactID(c model.ContactInquiry) string { return c.ID }

// New builds a store, restoring persisted state when a state file exists.
func New(opts Options) *Store {
	s := &Store{
		path:   opts.Path,
		logger: zerolog.Nop(),
		now:    opts.Now,
	}
	if opts.Logger != nil {
		s.logger = opts.Logger.With().Str("component", "fallback_store").Logger()
	}
	if s.now == nil {
		s.now = time.Now
	}

	props, contacts, found := s.load()
	if !found {
		props = append([]model.Property(nil), opts.Seed...)
	}

	for i := range props {
		props[i].EnsureLists()
	}

	s.properties = NewCollection(propertyID, props...)
	s.contacts = NewCollection(contactID, contacts...)
	return s
}

// load reads the state file. Malformed data degrades to empty collections.
func (s *Store) load() ([]model.Property, []model.ContactInquiry, bool) {
	if s.path == "" {
		return nil, nil, false
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, false
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("could not read fallback state, starting empty")
		return nil, nil, true
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("malformed fallback state, starting empty")
		return nil, nil, true
	}

	return decodeList[model.Property](s, "properties", snap.Properties),
		decodeList[model.ContactInquiry](s, "contacts", snap.Contacts),
		true
}

func decodeList[T any](s *Store, name string, raw json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.logger.Warn().Err(err).Str("collection", name).Msg("malformed fallback collection, treating as empty")
		return nil
	}
	return out
}

// persist writes the current state. Callers hold the write lock.
// Failures are logged; memory stays authoritative.
func (s *Store) persist() {
	if s.path == "" {
		return
	}

	props, err := json.Marshal(s.properties.All())
	if err != nil {
		s.logger.Error().Err(err).Msg("could not encode fallback properties")
		return
	}
	contacts, err := json.Marshal(s.contacts.All())
	if err != nil {
		s.logger.Error().Err(err).Msg("could not encode fallback contacts")
		return
	}

	data, err := json.MarshalIndent(snapshot{Properties: props, Contacts: contacts}, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("could not encode fallback state")
		return
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("could not persist fallback state")
	}
}

func writeFileAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ListAvailableProperties returns the seed and user-added properties with
// isAvailable set, in stored order.
func (s *Store) ListAvailableProperties() []model.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Property, 0, s.properties.Len())
	for _, p := range s.properties.All() {
		if p.IsAvailable {
			out = append(out, p)
		}
	}
	return out
}

// CreateContactInquiry stores a normalized, already validated submission.
func (s *Store) CreateContactInquiry(in model.ContactInput) model.ContactInquiry {
	inquiry := in.Inquiry(s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts.UpsertByID(inquiry)
	s.persist()
	return inquiry
}

// UpsertProperty inserts or replaces a property by id.
func (s *Store) UpsertProperty(p model.Property) {
	p.EnsureLists()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.properties.UpsertByID(p)
	s.persist()
}

// RemoveProperty deletes a property by id and reports whether it existed.
func (s *Store) RemoveProperty(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.properties.RemoveByID(id)
	if removed {
		s.persist()
	}
	return removed
}

// Properties returns the property repository view of the store.
func (s *Store) Properties() *PropertyView {
	return &PropertyView{store: s}
}

// Contacts returns the contact inquiry repository view of the store.
func (s *Store) Contacts() *ContactView {
	return &ContactView{store: s}
}
