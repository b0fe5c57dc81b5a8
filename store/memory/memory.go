// Package memory provides the default Store: a flat, unbounded, in-process
// map. Entries never expire and are never evicted; the cache grows with the
// set of distinct requests for the life of the process.
package memory

import (
	"context"
	"sync"

	"github.com/unkn0wn-root/gqlfetch/store"
)

type Store struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{m: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.m[key]
	return b, ok, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return true, nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[string][]byte)
	return nil
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
