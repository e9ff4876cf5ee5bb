// Package cache provides a best-effort JSON cache over Redis. A dead
// Redis never fails the request path: reads become misses, writes and
// deletes become no-ops, and the outage is logged once.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"sync"
	"time"

	"career-coach/internal/config"

	"github.com/redis/go-redis/v9"
)

const startupPingTimeout = 2 * time.Second

type Redis struct {
	client *redis.Client
	logger *log.Logger

	warnOnce sync.Once
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	if logger == nil {
		logger = log.Default()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Printf("[Cache] Redis unreachable at startup, running without cache: %v", err)
		_ = client.Close()
		client = nil
	}

	return &Redis{client: client, logger: logger}
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.bypass() {
		return false, nil
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		r.warnOutage(err)
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.bypass() {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		r.warnOutage(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.bypass() {
		return nil
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnOutage(err)
		return err
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.bypass() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.bypass() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) bypass() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnOutage(err error) {
	r.warnOnce.Do(func() {
		r.logger.Printf("[Cache] Redis errors, requests proceed uncached: %v", err)
	})
}
