package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"admin-console/core/config"
	"admin-console/core/console"
	"admin-console/core/loader"
	"admin-console/core/logger"
	"admin-console/core/middleware/auth"
	"admin-console/core/middleware/rayid"

	"admin-console/feature/selection"
	"admin-console/feature/session"
	"admin-console/feature/toolbar"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "admin-console/docs/swagger"
)

// @title Admin Console API
// @version 1.0
// @description Hosts console sessions: toolbar reconciliation, row selection, tabs and paging.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the admin console server",
	Long:  `Starts the HTTP server hosting console sessions and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 3. Open Session Store
		store, closeStore, err := openStore(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open session store", zap.String("store", cfg.Server.Store), zap.Error(err))
		}
		defer closeStore()

		// 4. Session Registry
		registry := console.NewRegistry(store, cfg.Console.Options(), logg)
		go registry.RunSweeper(ctx, cfg.Console.SweepInterval())

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(session.NewFeature(registry, logg))
		mgr.Register(toolbar.NewFeature(registry, logg))
		mgr.Register(selection.NewFeature(registry, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("store", cfg.Server.Store))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
