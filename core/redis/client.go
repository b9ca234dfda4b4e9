package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Connect creates a redis client and verifies the connection.
func Connect(cfg Config) (*goredis.Client, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 5
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeoutDuration,
		ReadTimeout:  timeoutDuration,
		WriteTimeout: timeoutDuration,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// TTL returns the snapshot expiry configured for cfg.
func (c Config) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}
