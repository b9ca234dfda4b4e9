package cmd

import (
	"context"
	"fmt"

	"admin-console/core/config"
	"admin-console/core/database"
	"admin-console/core/redis"
	"admin-console/core/server"
	"admin-console/core/snapshot"
	"admin-console/core/storage"

	"go.uber.org/zap"
)

// openStore builds the session snapshot store selected by cfg.Server.Store.
// The returned close function releases the backing connection.
func openStore(ctx context.Context, cfg *config.Config, l *zap.Logger) (snapshot.Store, func(), error) {
	noop := func() {}

	switch cfg.Server.Store {
	case server.StoreMemory:
		return snapshot.NewMemory(), noop, nil

	case server.StoreDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		store := snapshot.NewDatabase(db)
		if err := store.Migrate(ctx); err != nil {
			closeDB()
			return nil, nil, err
		}
		l.Info("Using database session store", zap.String("driver", cfg.Database.Driver))
		return store, closeDB, nil

	case server.StoreObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		store := snapshot.NewObject(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, nil, err
		}
		l.Info("Using object session store", zap.String("bucket", cfg.Storage.Bucket))
		return store, noop, nil

	case server.StoreRedis:
		client, err := redis.Connect(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		l.Info("Using redis session store", zap.String("addr", cfg.Redis.Addr))
		return snapshot.NewRedis(client, cfg.Redis.KeyPrefix, cfg.Redis.TTL()), func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("invalid server store %q", cfg.Server.Store)
	}
}
