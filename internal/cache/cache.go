// Package cache keeps computed match results in redis.
//
// Every job has a version counter. Results are stored under the version that
// was current before the availability was read, and any availability write
// for the job bumps the version, so stale results are never served.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nikmy/intersched/internal/matcher"
	"github.com/nikmy/intersched/pkg/errors"
	"github.com/nikmy/intersched/pkg/logger"
)

type Config struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
	Prefix   string        `yaml:"prefix"`
}

const (
	defaultTTL    = 10 * time.Minute
	defaultPrefix = "intersched"
)

func New(ctx context.Context, cfg Config, log logger.Logger) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	err := rdb.Ping(ctx).Err()
	if err != nil {
		_ = rdb.Close()
		return nil, errors.WrapFail(err, "ping redis")
	}

	return NewWithClient(rdb, cfg, log), nil
}

func NewWithClient(rdb *redis.Client, cfg Config, log logger.Logger) *RedisCache {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}

	return &RedisCache{
		rdb:    rdb,
		ttl:    cfg.TTL,
		prefix: cfg.Prefix,
		log:    log.With("match_cache"),
	}
}

type RedisCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
	log    logger.Logger
}

func (c *RedisCache) versionKey(jobID int64) string {
	return fmt.Sprintf("%s:version:%d", c.prefix, jobID)
}

func (c *RedisCache) matchKey(jobID int64, version int64, candidateID int64) string {
	return fmt.Sprintf("%s:match:%d:%d:%d", c.prefix, jobID, version, candidateID)
}

func (c *RedisCache) version(ctx context.Context, jobID int64) (int64, error) {
	v, err := c.rdb.Get(ctx, c.versionKey(jobID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, errors.WrapFail(err, "get job version")
}

// Get returns the cached result or nil, and the job version to pass to Put.
func (c *RedisCache) Get(ctx context.Context, jobID int64, candidateID int64) (*matcher.Result, int64, error) {
	version, err := c.version(ctx, jobID)
	if err != nil {
		return nil, 0, err
	}

	raw, err := c.rdb.Get(ctx, c.matchKey(jobID, version, candidateID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, nil
	}
	if err != nil {
		return nil, version, errors.WrapFail(err, "get match result")
	}

	var res matcher.Result
	err = json.Unmarshal(raw, &res)
	if err != nil {
		c.log.Warn(errors.WrapFail(err, "decode cached match result"))
		return nil, version, nil
	}

	return &res, version, nil
}

func (c *RedisCache) Put(ctx context.Context, jobID int64, candidateID int64, version int64, res matcher.Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return errors.WrapFail(err, "encode match result")
	}

	err = c.rdb.Set(ctx, c.matchKey(jobID, version, candidateID), raw, c.ttl).Err()
	return errors.WrapFail(err, "set match result")
}

// Invalidate drops every cached result of the job.
func (c *RedisCache) Invalidate(ctx context.Context, jobID int64) error {
	err := c.rdb.Incr(ctx, c.versionKey(jobID)).Err()
	return errors.WrapFail(err, "bump job version")
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
