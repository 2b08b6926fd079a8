package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spyglass-srv/config"
	"spyglass-srv/pkg/redis"
)

const (
	connectAttempts = 3
	connectBackoff  = time.Second
	pingTimeout     = 2 * time.Second
)

var (
	instance redis.IRedis
	mu       sync.RWMutex
)

// Connect opens the shared Redis client, retrying a few times while the
// server comes up. Later calls return the same client.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	clientCfg := redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := redis.NewRedis(clientCfg)
		if err == nil {
			instance = client
			return instance, nil
		}
		lastErr = err

		if attempt == connectAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectBackoff * time.Duration(attempt)):
		}
	}
	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", connectAttempts, lastErr)
}

// HealthCheck pings the shared client with a short timeout.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Redis client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return instance.Ping(ctx)
}

// Disconnect closes the shared client so the next Connect dials again.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
