package collection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"match-tracker/core/storage"
	"match-tracker/feature/collection/bgg"
	"match-tracker/feature/collection/models"
	"match-tracker/feature/collection/reconcile"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrSyncInProgress is returned when a sync is invoked while another run
// is still active. The overlapping call mutates nothing.
var ErrSyncInProgress = errors.New("collection: sync already in progress")

// Fetcher retrieves the remote collection. Implemented by *bgg.Client.
type Fetcher interface {
	FetchCollection(ctx context.Context) (*bgg.Collection, error)
}

// Service orchestrates collection sync runs.
type Service struct {
	fetcher Fetcher
	db      *gorm.DB
	store   storage.Client // nil when the thumbnail mirror is disabled
	bucket  string
	logger  *zap.Logger
	thumbs  *http.Client

	running atomic.Bool
}

// NewService creates a new collection sync service. store may be nil to
// disable thumbnail mirroring.
func NewService(fetcher Fetcher, db *gorm.DB, store storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		db:      db,
		store:   store,
		bucket:  bucket,
		logger:  logger,
		thumbs:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Run executes one full sync: fetch the remote collection, reconcile it
// item by item against the games table, and report the outcome.
//
// Only one run may be active at a time; an overlapping invocation fails
// fast with ErrSyncInProgress. Each item is committed before the next is
// consumed, so a cancelled or interrupted run preserves all progress made
// so far and still returns a valid partial report. Fatal conditions before
// the first item (auth rejected, remote unreachable) return an error and
// no report.
func (s *Service) Run(ctx context.Context) (*models.SyncReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.running.Store(false)

	start := time.Now()
	runStart := start.UTC()

	s.logger.Info("Starting collection sync")

	coll, err := s.fetcher.FetchCollection(ctx)
	if err != nil {
		return nil, err
	}
	defer coll.Close()

	report := &models.SyncReport{
		Errors:   []models.ItemError{},
		Warnings: []string{},
		Degraded: coll.Degraded,
	}
	seen := make(map[string]struct{})

	for {
		// Cancellation takes effect at item boundaries, never mid-commit.
		if err := ctx.Err(); err != nil {
			report.Warnings = append(report.Warnings, "sync cancelled: "+err.Error())
			break
		}

		item, err := coll.Next()
		if err == io.EOF {
			break
		}

		var perr *bgg.ParseError
		if errors.As(err, &perr) {
			report.GamesFailed++
			report.Errors = append(report.Errors, models.ItemError{
				ExternalID: perr.ExternalID,
				Name:       perr.Name,
				Reason:     perr.Reason,
			})
			continue
		}
		if err != nil {
			// The stream broke mid-way. Items committed so far stay
			// committed; surface the break inside the report.
			report.Errors = append(report.Errors, models.ItemError{Reason: err.Error()})
			break
		}

		outcome, err := reconcile.Apply(ctx, s.db, item, runStart)
		if err != nil {
			report.GamesFailed++
			report.Errors = append(report.Errors, models.ItemError{
				ExternalID: item.ExternalID,
				Name:       item.Name,
				Reason:     err.Error(),
			})
			continue
		}

		if _, dup := seen[item.ExternalID]; dup {
			// Remote invariant violation: the same id twice in one run.
			// The later item has already overwritten the earlier write;
			// record a warning instead of double counting.
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"duplicate external id %s (%s): later item wins", item.ExternalID, item.Name))
		} else {
			seen[item.ExternalID] = struct{}{}
			switch outcome {
			case reconcile.OutcomeAdded:
				report.GamesAdded++
			case reconcile.OutcomeUpdated:
				report.GamesUpdated++
			case reconcile.OutcomeUnchanged:
				report.GamesUnchanged++
			}
		}

		s.mirrorThumbnail(ctx, item, outcome, report)
	}

	report.ExecutionTime = time.Since(start).String()
	s.logger.Info("Collection sync completed",
		zap.Int("added", report.GamesAdded),
		zap.Int("updated", report.GamesUpdated),
		zap.Int("unchanged", report.GamesUnchanged),
		zap.Int("failed", report.GamesFailed),
		zap.Int("warnings", len(report.Warnings)),
		zap.String("execution_time", report.ExecutionTime))

	return report, nil
}

// mirrorThumbnail copies the item's thumbnail into the storage bucket.
// Best effort: a failed mirror is a warning, never a sync failure.
func (s *Service) mirrorThumbnail(ctx context.Context, item *bgg.CatalogItem, outcome reconcile.Outcome, report *models.SyncReport) {
	if s.store == nil || item.ThumbnailURL == "" || outcome == reconcile.OutcomeUnchanged {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.ThumbnailURL, nil)
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"thumbnail mirror failed for %s: %v", item.ExternalID, err))
		return
	}

	resp, err := s.thumbs.Do(req)
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"thumbnail mirror failed for %s: %v", item.ExternalID, err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"thumbnail mirror failed for %s: status %d", item.ExternalID, resp.StatusCode))
		return
	}

	objName := fmt.Sprintf("thumbnails/%s.jpg", item.ExternalID)
	_, err = s.store.PutObject(ctx, s.bucket, objName, resp.Body, resp.ContentLength, minio.PutObjectOptions{
		ContentType: resp.Header.Get("Content-Type"),
	})
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"thumbnail mirror failed for %s: %v", item.ExternalID, err))
		return
	}

	s.logger.Debug("Mirrored thumbnail", zap.String("external_id", item.ExternalID))
}
