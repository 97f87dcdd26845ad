package reconcile_test

import (
	"context"
	"testing"
	"time"

	"match-tracker/core/database"
	"match-tracker/feature/collection/bgg"
	"match-tracker/feature/collection/reconcile"
	"match-tracker/feature/game/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Game{}))
	return db
}

func intPtr(v int) *int {
	return &v
}

func TestApplyAddsUnknownGame(t *testing.T) {
	db := setupDB(t)
	runStart := time.Now().UTC().Truncate(time.Second)

	item := &bgg.CatalogItem{
		ExternalID:    "13",
		Name:          "Catan",
		ThumbnailURL:  "https://img/13_t.jpg",
		YearPublished: intPtr(1995),
	}

	outcome, err := reconcile.Apply(context.Background(), db, item, runStart)
	assert.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeAdded, outcome)

	var game models.Game
	assert.NoError(t, db.Where("external_id = ?", "13").First(&game).Error)
	assert.Equal(t, "Catan", game.Name)
	assert.Equal(t, "https://img/13_t.jpg", game.ThumbnailURL)
	if assert.NotNil(t, game.YearPublished) {
		assert.Equal(t, 1995, *game.YearPublished)
	}
	if assert.NotNil(t, game.LastSyncedAt) {
		assert.WithinDuration(t, runStart, *game.LastSyncedAt, time.Second)
	}
}

func TestApplyUpdatesChangedFields(t *testing.T) {
	db := setupDB(t)

	first := &bgg.CatalogItem{ExternalID: "13", Name: "Catan", YearPublished: intPtr(1995)}
	_, err := reconcile.Apply(context.Background(), db, first, time.Now().UTC())
	assert.NoError(t, err)

	changed := &bgg.CatalogItem{
		ExternalID:    "13",
		Name:          "Catan (25th Anniversary)",
		ThumbnailURL:  "https://img/13_new.jpg",
		YearPublished: intPtr(1995),
	}
	outcome, err := reconcile.Apply(context.Background(), db, changed, time.Now().UTC())
	assert.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeUpdated, outcome)

	var game models.Game
	assert.NoError(t, db.Where("external_id = ?", "13").First(&game).Error)
	assert.Equal(t, "Catan (25th Anniversary)", game.Name)
	assert.Equal(t, "https://img/13_new.jpg", game.ThumbnailURL)

	// One row per external id, regardless of how often it is applied.
	var count int64
	assert.NoError(t, db.Model(&models.Game{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := setupDB(t)

	item := &bgg.CatalogItem{ExternalID: "822", Name: "Carcassonne", YearPublished: intPtr(2000)}

	firstRun := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	outcome, err := reconcile.Apply(context.Background(), db, item, firstRun)
	assert.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeAdded, outcome)

	secondRun := time.Now().UTC().Truncate(time.Second)
	outcome, err = reconcile.Apply(context.Background(), db, item, secondRun)
	assert.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeUnchanged, outcome)

	// Unchanged still refreshes the "last verified" timestamp.
	var game models.Game
	assert.NoError(t, db.Where("external_id = ?", "822").First(&game).Error)
	if assert.NotNil(t, game.LastSyncedAt) {
		assert.WithinDuration(t, secondRun, *game.LastSyncedAt, time.Second)
	}
}

func TestApplyNeverMergesByName(t *testing.T) {
	db := setupDB(t)

	// A manually created game with the same name but no external id.
	manual := models.Game{Name: "Catan"}
	assert.NoError(t, db.Create(&manual).Error)

	item := &bgg.CatalogItem{ExternalID: "13", Name: "Catan"}
	outcome, err := reconcile.Apply(context.Background(), db, item, time.Now().UTC())
	assert.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeAdded, outcome)

	// Two distinct rows: the manual one stays untouched.
	var count int64
	assert.NoError(t, db.Model(&models.Game{}).Where("name = ?", "Catan").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var kept models.Game
	assert.NoError(t, db.First(&kept, manual.ID).Error)
	assert.Nil(t, kept.ExternalID)
	assert.Nil(t, kept.LastSyncedAt)
}
