// Package rds provides a redis client with command level error logging
package rds

import (
	"context"
	"errors"
	"time"

	"pillbox/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis client
type Config struct {
	Addr     string
	DB       int
	Password string

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Client wraps a go-redis client; every method takes the caller's context
type Client struct {
	rdb redis.UniversalClient
	log logger.Logger
}

// New wraps an existing go-redis client (tests hand in one pointed at miniredis)
func New(rdb redis.UniversalClient, log logger.Logger) *Client {
	return &Client{rdb: rdb, log: log}
}

// Open builds a client from cfg; the connection pool dials lazily
func Open(cfg Config, log logger.Logger) (*Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("rds: empty addr")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		Password:     cfg.Password,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	return New(rdb, log), nil
}

// Ping verifies connectivity
func (c *Client) Ping(ctx context.Context) error {
	return c.logErr("PING", "", c.rdb.Ping(ctx).Err())
}

// Close releases the pool
func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// Run executes a Lua script by sha, loading it on NOSCRIPT
func (c *Client) Run(ctx context.Context, script *redis.Script, keys []string, args ...any) (any, error) {
	v, err := script.Run(ctx, c.rdb, keys, args...).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return v, c.logErr("EVALSHA", first(keys), err)
}

// LRange returns list elements between start and stop inclusive
func (c *Client) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	v, err := c.rdb.LRange(ctx, key, start, stop).Result()
	return v, c.logErr("LRANGE", key, err)
}

// LRem removes up to count occurrences of value and reports how many went
func (c *Client) LRem(ctx context.Context, key string, count int64, value string) (int64, error) {
	n, err := c.rdb.LRem(ctx, key, count, value).Result()
	return n, c.logErr("LREM", key, err)
}

// Del deletes keys and reports how many existed
func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	n, err := c.rdb.Del(ctx, keys...).Result()
	return n, c.logErr("DEL", first(keys), err)
}

func (c *Client) logErr(cmd, key string, err error) error {
	if err == nil || errors.Is(err, redis.Nil) {
		return err
	}
	c.log.Warn().Err(err).Str("cmd", cmd).Str("key", key).Msg("redis command failed")
	return err
}

func first(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}
