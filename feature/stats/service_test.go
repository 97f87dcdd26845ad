package stats_test

import (
	"context"
	"testing"
	"time"

	"match-tracker/core/database"
	gamemodels "match-tracker/feature/game/models"
	matchmodels "match-tracker/feature/match/models"
	playermodels "match-tracker/feature/player/models"
	"match-tracker/feature/stats"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setupDB seeds two games, two players and three matches of Catan:
// Alice wins twice, Bob once. Carcassonne has no matches.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&gamemodels.Game{},
		&playermodels.Player{},
		&matchmodels.Match{},
	))

	games := []gamemodels.Game{{Name: "Catan"}, {Name: "Carcassonne"}}
	assert.NoError(t, db.Create(&games).Error)

	players := []playermodels.Player{{Name: "Alice"}, {Name: "Bob"}}
	assert.NoError(t, db.Create(&players).Error)

	matches := []matchmodels.Match{
		{GameID: games[0].ID, WinnerID: players[0].ID, DatePlayed: time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)},
		{GameID: games[0].ID, WinnerID: players[0].ID, DatePlayed: time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)},
		{GameID: games[0].ID, WinnerID: players[1].ID, DatePlayed: time.Date(2026, 1, 20, 21, 0, 0, 0, time.UTC)},
	}
	assert.NoError(t, db.Create(&matches).Error)

	return db
}

func TestStatsForGame(t *testing.T) {
	db := setupDB(t)
	svc := stats.NewService(db, zap.NewNop())

	gs, err := svc.ForGame(context.Background(), 1)
	assert.NoError(t, err)

	assert.Equal(t, "Catan", gs.GameName)
	assert.Equal(t, 3, gs.TotalMatches)
	if assert.NotNil(t, gs.LastPlayed) {
		assert.Equal(t, time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC), gs.LastPlayed.UTC())
	}

	alice := gs.PlayerStats["Alice"]
	assert.Equal(t, 2, alice.Wins)
	assert.InDelta(t, 66.7, alice.WinRate, 0.01)

	bob := gs.PlayerStats["Bob"]
	assert.Equal(t, 1, bob.Wins)
	assert.InDelta(t, 33.3, bob.WinRate, 0.01)
}

func TestStatsForGameWithoutMatches(t *testing.T) {
	db := setupDB(t)
	svc := stats.NewService(db, zap.NewNop())

	gs, err := svc.ForGame(context.Background(), 2)
	assert.NoError(t, err)

	assert.Equal(t, "Carcassonne", gs.GameName)
	assert.Equal(t, 0, gs.TotalMatches)
	assert.Nil(t, gs.LastPlayed)
	assert.Empty(t, gs.PlayerStats)
}

func TestStatsForUnknownGame(t *testing.T) {
	db := setupDB(t)
	svc := stats.NewService(db, zap.NewNop())

	_, err := svc.ForGame(context.Background(), 999)
	assert.ErrorIs(t, err, stats.ErrGameNotFound)
}

func TestStatsAll(t *testing.T) {
	db := setupDB(t)
	svc := stats.NewService(db, zap.NewNop())

	all, err := svc.All(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, all, 2) {
		assert.Equal(t, "Catan", all[0].GameName)
		assert.Equal(t, 3, all[0].TotalMatches)
		assert.Equal(t, "Carcassonne", all[1].GameName)
		assert.Equal(t, 0, all[1].TotalMatches)
	}
}
