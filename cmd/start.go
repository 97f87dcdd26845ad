package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"match-tracker/core/config"
	"match-tracker/core/database"
	"match-tracker/core/loader"
	"match-tracker/core/logger"
	"match-tracker/core/middleware/auth"
	"match-tracker/core/middleware/rayid"
	"match-tracker/core/storage"

	"match-tracker/feature/collection"
	"match-tracker/feature/game"
	gamemodels "match-tracker/feature/game/models"
	"match-tracker/feature/match"
	matchmodels "match-tracker/feature/match/models"
	"match-tracker/feature/player"
	playermodels "match-tracker/feature/player/models"
	"match-tracker/feature/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "match-tracker/docs/swagger"
)

// @title Match Tracker API
// @version 1.0
// @description API for tracking board game matches and syncing a BGG collection.
// @host localhost:8080
// @BasePath /api

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the match tracker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// Keep the schema in step with the models
		if err := db.AutoMigrate(
			&playermodels.Player{},
			&gamemodels.Game{},
			&matchmodels.Match{},
		); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// 4. Initialize Storage (Optional thumbnail mirror)
		var store storage.Client
		if cfg.Storage.Enabled() {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Warn("Thumbnail mirror disabled: storage client failed", zap.Error(err))
				store = nil
			}
			if store != nil {
				if err := storage.EnsureBucket(context.Background(), store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
					logg.Warn("Thumbnail mirror disabled: bucket unavailable", zap.Error(err))
					store = nil
				}
			}
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Register Features
		mgr := loader.NewManager()
		mgr.Register(player.NewFeature(db, logg))
		mgr.Register(game.NewFeature(db, logg))
		mgr.Register(match.NewFeature(db, logg))
		mgr.Register(stats.NewFeature(db, logg))
		mgr.Register(collection.NewFeature(cfg.BGG, db, store, cfg.Storage.Bucket, logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CORSOrigins,
		}))

		// Request logging with Zap + RayID
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		api := app.Group("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
