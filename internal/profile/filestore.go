package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore keeps the whole user-to-profile mapping in one JSON file and
// rewrites it on every Put. The mutex covers this process only; two
// processes writing the same file can still clobber each other. Known
// limitation of the file backend, use the sqlite backend where that
// matters.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context, userID string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return nil, err
	}
	return m[userID], nil
}

func (s *FileStore) Put(_ context.Context, userID string, profile json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	m[userID] = profile
	return s.save(m)
}

// load treats a missing or unreadable file as an empty mapping, matching
// the whole-file read-modify-write semantics of the store.
func (s *FileStore) load() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]json.RawMessage{}, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]json.RawMessage{}, nil
	}
	if m == nil {
		m = map[string]json.RawMessage{}
	}
	return m, nil
}

func (s *FileStore) save(m map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	return nil
}
