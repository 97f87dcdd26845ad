package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"match-tracker/core/config"
	"match-tracker/core/database"
	"match-tracker/core/logger"
	"match-tracker/core/storage"
	"match-tracker/feature/collection"
	"match-tracker/feature/collection/bgg"
	collectionmodels "match-tracker/feature/collection/models"
	gamemodels "match-tracker/feature/game/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs one collection sync from the command line.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the game catalog with the configured BGG collection",
	Long: `Fetches the configured user's BoardGameGeek collection and reconciles
it into the local games table, reporting added, updated, unchanged and
failed items.

The run can be interrupted with Ctrl-C; items already committed stay
committed and the partial report is still printed.

Examples:
  # One-shot sync using BGG_USERNAME from the environment or .env
  match-tracker sync`,
	RunE: runCollectionSync,
}

func init() {
	RootCmd.AddCommand(syncCmd)
}

func runCollectionSync(cmd *cobra.Command, args []string) error {
	// Cancel at the next item boundary on Ctrl-C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.BGG.IsEnabled() {
		return fmt.Errorf("no BGG username configured (set BGG_USERNAME)")
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting collection sync", zap.String("username", cfg.BGG.Username))

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&gamemodels.Game{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Optional thumbnail mirror
	var store storage.Client
	if cfg.Storage.Enabled() {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			l.Warn("Thumbnail mirror disabled: storage client failed", zap.Error(err))
			store = nil
		}
		if store != nil {
			if err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				l.Warn("Thumbnail mirror disabled: bucket unavailable", zap.Error(err))
				store = nil
			}
		}
	}

	client := bgg.NewClient(cfg.BGG, l)
	svc := collection.NewService(client, db, store, cfg.Storage.Bucket, l)

	report, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	printSyncReport(l, report)
	return nil
}

// printSyncReport prints a formatted sync report using the logger.
func printSyncReport(l *zap.Logger, report *collectionmodels.SyncReport) {
	l.Info("Sync report",
		zap.Int("games_added", report.GamesAdded),
		zap.Int("games_updated", report.GamesUpdated),
		zap.Int("games_unchanged", report.GamesUnchanged),
		zap.Int("games_failed", report.GamesFailed),
		zap.Bool("degraded", report.Degraded),
		zap.String("execution_time", report.ExecutionTime),
	)

	for _, w := range report.Warnings {
		l.Warn("Sync warning", zap.String("warning", w))
	}
	for _, e := range report.Errors {
		l.Warn("Item failed",
			zap.String("external_id", e.ExternalID),
			zap.String("name", e.Name),
			zap.String("reason", e.Reason),
		)
	}
}
