package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

// Client wraps the go-redis client used for rate limiting.
type Client struct {
	rdb *redis.Client
}

// Connect parses a redis:// URL, opens a client and pings it once so a
// bad address fails at startup instead of on first request.
func Connect(url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{rdb: rdb}, nil
}

// Raw exposes the underlying client for middleware that issues its own
// commands.
func (c *Client) Raw() *redis.Client { return c.rdb }

// Healthy reports whether the connection still answers a ping.
func (c *Client) Healthy(ctx context.Context) bool {
	return c.rdb.Ping(ctx).Err() == nil
}

// Close releases the connection pool.
func (c *Client) Close() error { return c.rdb.Close() }
