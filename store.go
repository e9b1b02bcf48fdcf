package finance

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// StorageMedium is the raw persistence behind a Store: a string-keyed blob store
// with no query capability. Collections are always read and written whole.
type StorageMedium interface {
	// Read returns the stored bytes for key, or ok=false when absent.
	Read(key string) (data []byte, ok bool)
	// Write stores the bytes for key, replacing any previous value.
	Write(key string, data []byte) error
}

// DirMedium persists each key as a JSON file in a directory. Layout is one
// file per collection, human readable and diff friendly.
type DirMedium struct {
	Dir string
}

func (d DirMedium) path(key string) string { return filepath.Join(d.Dir, key+".json") }

func (d DirMedium) Read(key string) ([]byte, bool) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (d DirMedium) Write(key string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(d.path(key), data, 0o644)
}

// MemMedium is an in-memory StorageMedium, used in tests.
type MemMedium map[string][]byte

func NewMemMedium() MemMedium { return make(MemMedium) }

func (m MemMedium) Read(key string) ([]byte, bool) {
	data, ok := m[key]
	return data, ok
}

func (m MemMedium) Write(key string, data []byte) error {
	m[key] = data
	return nil
}

// Store wraps a StorageMedium with JSON (de)serialization and a fail-silent error
// policy: a corrupt or missing value degrades to the caller's default, and a
// write failure is logged and swallowed. The application must stay usable
// even when its storage is gone.
type Store struct {
	medium StorageMedium
}

func NewStore(medium StorageMedium) *Store { return &Store{medium: medium} }

// Get decodes the value stored under key into v, which must be a pointer
// pre-set to the caller's default value. It reports whether a stored value
// was decoded; on absence or corrupt data v is left untouched.
func (s *Store) Get(key string, v any) bool {
	data, ok := s.medium.Read(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("storage: corrupt value for %q ignored: %v", key, err)
		return false
	}
	return true
}

// Has reports whether any value, even a corrupt one, is stored under key.
func (s *Store) Has(key string) bool {
	_, ok := s.medium.Read(key)
	return ok
}

// Set encodes v and persists it under key. Failures are logged, never
// returned: callers must not have to handle a storage-layer error.
func (s *Store) Set(key string, v any) {
	data, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		log.Printf("storage: cannot encode value for %q: %v", key, err)
		return
	}
	if err := s.medium.Write(key, data); err != nil {
		log.Printf("storage: cannot persist %q: %v", key, err)
	}
}
