package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"phonelogin/internal/domain"
)

const (
	// DefaultFile is the storage document name used when none is configured.
	DefaultFile = "storage.json"

	documentVersion = 1
)

// document is the on-disk layout of the key-value store.
type document struct {
	V     int               `json:"v"`
	Items map[string]string `json:"items"`
}

// FileStore persists items to a JSON document on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by dir/file. An empty file name
// selects DefaultFile.
func NewFileStore(dir, file string) *FileStore {
	if file == "" {
		file = DefaultFile
	}
	return &FileStore{path: filepath.Join(dir, file)}
}

// Path returns the document backing this store.
func (s *FileStore) Path() string { return s.path }

// GetItem returns the value stored under key and whether it was present.
func (s *FileStore) GetItem(ctx context.Context, key domain.Key) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := doc.Items[key.String()]
	return v, ok, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *FileStore) SetItem(ctx context.Context, key domain.Key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Items[key.String()] = value
	return writeJSON(s.path, doc, 0o600)
}

// RemoveItem deletes key. A missing key is not an error and causes no write.
func (s *FileStore) RemoveItem(ctx context.Context, key domain.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Items[key.String()]; !ok {
		return nil
	}
	delete(doc.Items, key.String())
	return writeJSON(s.path, doc, 0o600)
}

// load reads the document; callers must hold s.mu.
func (s *FileStore) load() (document, error) {
	doc := document{V: documentVersion}
	if err := readJSON(s.path, &doc); err != nil {
		return document{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	if doc.V > documentVersion {
		return document{}, fmt.Errorf("unsupported storage version %d", doc.V)
	}
	if doc.Items == nil {
		doc.Items = make(map[string]string)
	}
	return doc, nil
}

// Compile-time assertion that FileStore implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*FileStore)(nil)
