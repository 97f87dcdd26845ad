package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"match-tracker/feature/collection/bgg"
	"match-tracker/feature/game/models"

	"gorm.io/gorm"
)

// Outcome classifies the effect of reconciling one remote item.
type Outcome string

const (
	// OutcomeAdded means no local game carried the item's external id and
	// a new row was created.
	OutcomeAdded Outcome = "added"
	// OutcomeUpdated means a local game existed and at least one tracked
	// field differed from the remote item.
	OutcomeUpdated Outcome = "updated"
	// OutcomeUnchanged means the local game already matched the remote
	// item; only last_synced_at was refreshed.
	OutcomeUnchanged Outcome = "unchanged"
)

// Apply reconciles a single catalog item against the games table and
// commits the resulting mutation.
//
// Lookup is strictly by external id; a manually created game that happens
// to share a name with a remote item is never touched. Applying the same
// item twice with no remote change in between yields OutcomeUnchanged on
// the second application.
func Apply(ctx context.Context, db *gorm.DB, item *bgg.CatalogItem, runStart time.Time) (Outcome, error) {
	tx := db.WithContext(ctx)

	var game models.Game
	err := tx.Where("external_id = ?", item.ExternalID).First(&game).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		externalID := item.ExternalID
		syncedAt := runStart
		game = models.Game{
			Name:          item.Name,
			ExternalID:    &externalID,
			ThumbnailURL:  item.ThumbnailURL,
			YearPublished: item.YearPublished,
			LastSyncedAt:  &syncedAt,
		}
		if err := tx.Create(&game).Error; err != nil {
			return "", fmt.Errorf("failed to insert game %q: %w", item.ExternalID, err)
		}
		return OutcomeAdded, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up game %q: %w", item.ExternalID, err)
	}

	// Overwrite only the fields that actually differ.
	updates := map[string]any{}
	if game.Name != item.Name {
		updates["name"] = item.Name
	}
	if game.ThumbnailURL != item.ThumbnailURL {
		updates["thumbnail_url"] = item.ThumbnailURL
	}
	if !yearEqual(game.YearPublished, item.YearPublished) {
		updates["year_published"] = item.YearPublished
	}

	outcome := OutcomeUnchanged
	if len(updates) > 0 {
		outcome = OutcomeUpdated
	}

	// last_synced_at records "last verified", so it is written even when
	// nothing else changed.
	updates["last_synced_at"] = runStart

	if err := tx.Model(&game).Updates(updates).Error; err != nil {
		return "", fmt.Errorf("failed to update game %q: %w", item.ExternalID, err)
	}

	return outcome, nil
}

func yearEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
