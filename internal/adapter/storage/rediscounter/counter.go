// Package rediscounter hands out upload namespaces from an atomic Redis INCR.
package rediscounter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

const DefaultKey = "mixtaped:namespace"

type Options struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// commander is the subset of *redis.Client the counter uses.
type commander interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

type Counter struct {
	client commander
	key    string
	closer func() error
}

// Dial connects to Redis and verifies the connection.
func Dial(ctx context.Context, opts Options) (*Counter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	c := New(client, opts.Key)
	c.closer = client.Close
	return c, nil
}

func New(client commander, key string) *Counter {
	if key == "" {
		key = DefaultKey
	}
	return &Counter{client: client, key: key}
}

// Ensure initialises the key to 0 unless it already holds a value.
func (c *Counter) Ensure(ctx context.Context) error {
	created, err := c.client.SetNX(ctx, c.key, 0, 0).Result()
	if err != nil {
		return fmt.Errorf("initialise %s: %w", c.key, err)
	}
	if created {
		logger.Warn.Printf("redis counter %s missing, initialised to 0", c.key)
	}
	return nil
}

// Next increments atomically, so the value is reserved as soon as it is returned.
func (c *Counter) Next(ctx context.Context) (int64, error) {
	n, err := c.client.Incr(ctx, c.key).Result()
	if err != nil {
		return 0, fmt.Errorf("increment %s: %w", c.key, err)
	}
	return n, nil
}

// Commit is a no-op: INCR already persisted the value.
func (c *Counter) Commit(context.Context, int64) error {
	return nil
}

func (c *Counter) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

var _ port.NamespaceCounter = (*Counter)(nil)
