package credential

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps credentials in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[normalizeName(name)]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(ctx context.Context, name, value string) error {
	key := normalizeName(name)
	if key == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A blank value clears the credential.
	if value = strings.TrimSpace(value); value == "" {
		delete(s.values, key)
		return nil
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeName(name)
	if _, ok := s.values[key]; !ok {
		return ErrNotFound
	}
	delete(s.values, key)
	return nil
}

// normalizeName lower-cases names so OPENAI_API_KEY and openai_api_key are one credential.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
