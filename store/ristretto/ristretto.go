package ristretto

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"
)

// Store adapts Ristretto. Ristretto is cost-bounded: it may evict entries
// and may refuse a write outright, trading the unbounded default for a
// memory ceiling. Cost is the byte length of the stored value.
type Store struct {
	c *rc.Cache
}

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		s.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) (bool, error) {
	return s.c.Set(key, value, int64(len(value))), nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.c.Del(key)
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes ristretto metrics if enabled (not part of store.Store).
func (s *Store) Metrics() *rc.Metrics { return s.c.Metrics }
