// Package redis connects to the redis server used as a session snapshot
// store. It wraps github.com/redis/go-redis/v9 with the application's
// configuration and timeouts.
//
// # Usage
//
//	client, err := redis.Connect(cfg.Redis)
//	store := snapshot.NewRedis(client, cfg.Redis.KeyPrefix, cfg.Redis.TTL())
package redis
