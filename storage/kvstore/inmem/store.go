package inmemstore

import (
	"context"
	"sync"

	"github.com/coachly/mobile/storage/kvstore"
)

// Store is an in-memory kvstore.Store, used in tests and when no storage
// path is configured. Contents are lost when the process exits.
type Store struct {
	mu    sync.RWMutex
	table map[string]string
}

var _ kvstore.Store = (*Store)(nil) // interface compliance check

func New() *Store {
	return &Store{table: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if val, ok := s.table[key]; ok {
		return val, nil
	}
	return "", kvstore.ErrKeyNotFound
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.table, key)
	return nil
}

func (s *Store) Close() error { return nil }
