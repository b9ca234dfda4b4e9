package cmd

import (
	"context"
	"fmt"
	"time"

	"admin-console/core/config"
	"admin-console/core/database"
	"admin-console/core/logger"
	"admin-console/core/redis"
	"admin-console/core/server"
	"admin-console/core/snapshot"
	"admin-console/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkFix bool

// checkCmd verifies the configuration and the session store.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check configuration and session store connectivity",
	Long: `Validates the configuration and verifies that the configured session store
is reachable. For the database store the snapshot table schema is checked,
for the object store the bucket and, with a retention configured, expired
snapshots. Use --fix to create what is missing and prune expired snapshots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		startTime := time.Now()
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := checkStore(ctx, cfg, l, checkFix); err != nil {
			return err
		}
		l.Info("Check passed",
			zap.String("store", cfg.Server.Store),
			zap.Duration("duration", time.Since(startTime)))
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkFix, "fix", false, "Create the snapshot table or bucket if missing and prune expired snapshots")
	RootCmd.AddCommand(checkCmd)
}

func checkStore(ctx context.Context, cfg *config.Config, l *zap.Logger, fix bool) error {
	switch cfg.Server.Store {
	case server.StoreMemory:
		l.Info("Memory session store needs no checks")
		return nil

	case server.StoreDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		store := snapshot.NewDatabase(db)
		missing, err := store.MissingColumns(ctx)
		if err != nil {
			return err
		}
		if len(missing) == 0 {
			l.Info("Snapshot table is up to date")
			return nil
		}
		if !fix {
			return fmt.Errorf("snapshot table is missing columns %v (run with --fix)", missing)
		}
		l.Info("Migrating snapshot table", zap.Strings("missing", missing))
		return store.Migrate(ctx)

	case server.StoreObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		store := snapshot.NewObject(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
		return checkObjects(ctx, store, cfg.Storage.Retention(), l, fix)

	case server.StoreRedis:
		client, err := redis.Connect(cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		l.Info("Redis is reachable", zap.String("addr", cfg.Redis.Addr))
		return nil

	default:
		return fmt.Errorf("invalid server store %q", cfg.Server.Store)
	}
}

// checkObjects verifies the snapshot bucket and looks for snapshots older
// than retention. With fix the bucket is created and expired snapshots are
// removed.
func checkObjects(ctx context.Context, store *snapshot.Object, retention time.Duration, l *zap.Logger, fix bool) error {
	exists, err := store.BucketExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if !fix {
			return fmt.Errorf("bucket %s does not exist (run with --fix)", store.Bucket())
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return err
		}
		l.Info("Created snapshot bucket", zap.String("bucket", store.Bucket()))
	} else {
		l.Info("Snapshot bucket exists", zap.String("bucket", store.Bucket()))
	}

	if retention <= 0 {
		return nil
	}
	cutoff := time.Now().Add(-retention)

	if fix {
		n, err := store.Prune(ctx, cutoff)
		if err != nil {
			return err
		}
		l.Info("Pruned expired snapshots", zap.Int("count", n), zap.Duration("retention", retention))
		return nil
	}

	expired, err := store.Expired(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(expired) > 0 {
		l.Warn("Expired snapshots found (run with --fix to prune)",
			zap.Int("count", len(expired)),
			zap.Duration("retention", retention))
	}
	return nil
}
