package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection names. Each one maps to a single JSON document holding the
// entire collection.
const (
	Contacts    = "contacts"
	Products    = "products"
	Invoices    = "invoices"
	Purchases   = "purchases"
	CompanyInfo = "company-info"
)

// ErrCollectionMissing is returned by Load when the backing document does
// not exist yet. Callers decide whether that means "empty" (reads, saves)
// or "File not found" (deletes).
var ErrCollectionMissing = errors.New("collection document missing")

// Store is a whole-document JSON store: one file per collection, read and
// rewritten in full on every mutation. There are no transactions and no
// partial writes; a per-collection mutex serializes each load-mutate-save
// cycle so two rapid calls against the same collection cannot clobber each
// other's write.
type Store struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a store rooted at dir. The directory is created lazily on the
// first save.
func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Dir returns the data directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file backing a collection.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Exists reports whether the collection document has been written yet.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Load deserializes the whole collection document into v. A missing file is
// ErrCollectionMissing; a malformed document is a fatal read error, never
// silently treated as empty.
func (s *Store) Load(name string, v any) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrCollectionMissing
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Save serializes v and overwrites the entire collection document, creating
// the data directory if missing. Documents are pretty-printed with 2-space
// indent, the same layout the records were originally authored in.
func (s *Store) Save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// WithLock runs fn while holding the collection's mutex. Every
// load-mutate-save cycle goes through here; single-caller behavior is
// unchanged, concurrent callers serialize instead of losing updates.
func (s *Store) WithLock(name string, fn func() error) error {
	s.lock(name).Lock()
	defer s.lock(name).Unlock()
	return fn()
}

func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[name]
	if !ok {
		m = &sync.Mutex{}
		s.locks[name] = m
	}
	return m
}
