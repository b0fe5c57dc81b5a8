package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	st "github.com/unkn0wn-root/gqlfetch/store"
)

var ErrNilClient = errors.New("redis store: nil client")

// Redis adapts a go-redis client so several processes can share one response
// cache. Entries under gqlfetch keys belong to gqlfetch; foreign writes fail
// wire validation on read and are deleted.
type Redis struct {
	rdb         goredis.UniversalClient
	ttl         time.Duration
	closeClient bool
}

var _ st.Store = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	TTL         time.Duration // 0 => entries persist until overwritten
	CloseClient bool          // set true only if this store exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	ttl := cfg.TTL
	if ttl < 0 {
		ttl = 0
	}
	return &Redis{rdb: cfg.Client, ttl: ttl, closeClient: cfg.CloseClient}, nil
}

func (s *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (s *Redis) Set(ctx context.Context, key string, value []byte) (bool, error) {
	if err := s.rdb.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Redis) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Redis) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
