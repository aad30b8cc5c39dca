package document

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/nodeedit/pkg/config"
	"github.com/matzehuels/nodeedit/pkg/errors"
)

// RedisStore keeps the document as a Redis string, so several editors can
// share it. Each save is a single SET of the whole text.
type RedisStore struct {
	client *redis.Client
	key    string
	owned  bool
}

// NewRedisStore connects to Redis and returns a store for the document name.
// The key is the configured prefix followed by name.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, name string) (*RedisStore, error) {
	if err := errors.ValidateKey(name); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to redis at %s", cfg.Addr)
	}

	s := NewRedisStoreWithClient(client, cfg.Prefix+name)
	s.owned = true
	return s, nil
}

// NewRedisStoreWithClient wraps an existing client. The caller keeps
// ownership of the client; Close does not close it.
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// Contents returns the value of the document key.
func (s *RedisStore) Contents(ctx context.Context) (string, error) {
	start := time.Now()
	text, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		err = errors.New(errors.ErrCodeStore, "document %s not found", s.key)
	}
	return text, observe(ctx, config.BackendRedis, false, len(text), start, err)
}

// SetContents overwrites the document key without expiry.
func (s *RedisStore) SetContents(ctx context.Context, text string) error {
	start := time.Now()
	err := s.client.Set(ctx, s.key, text, 0).Err()
	return observe(ctx, config.BackendRedis, true, len(text), start, err)
}

// Name returns the Redis key.
func (s *RedisStore) Name() string { return s.key }

// Close closes the client if the store created it.
func (s *RedisStore) Close() error {
	if s.owned {
		return s.client.Close()
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
