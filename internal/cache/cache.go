// Package cache keeps recently loaded lead field configurations in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"conectezap-dashboard/internal/config"
	"conectezap-dashboard/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key is absent.
var ErrMiss = errors.New("cache miss")

type LeadFieldCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLeadFieldCache(rdb *redis.Client, ttl time.Duration) *LeadFieldCache {
	return &LeadFieldCache{rdb: rdb, ttl: ttl}
}

// NewClient returns nil when REDIS_ADDR is empty.
func NewClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return cli, nil
}

func Key(accountID string) string { return "lead_fields:" + accountID }

func (c *LeadFieldCache) Get(ctx context.Context, accountID string) (*models.LeadFieldConfig, error) {
	raw, err := c.rdb.Get(ctx, Key(accountID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	var rec models.LeadFieldConfig
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode cached lead fields: %w", err)
	}
	return &rec, nil
}

func (c *LeadFieldCache) Set(ctx context.Context, rec *models.LeadFieldConfig) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, Key(rec.AccountID), raw, c.ttl).Err()
}

// Add stores rec only when no entry exists yet. Loads use it so an older
// read can never replace what a save just wrote.
func (c *LeadFieldCache) Add(ctx context.Context, rec *models.LeadFieldConfig) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.rdb.SetNX(ctx, Key(rec.AccountID), raw, c.ttl).Err()
}

func (c *LeadFieldCache) Delete(ctx context.Context, accountID string) error {
	return c.rdb.Del(ctx, Key(accountID)).Err()
}
