package stats

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	gamemodels "match-tracker/feature/game/models"
	matchmodels "match-tracker/feature/match/models"
	playermodels "match-tracker/feature/player/models"
	"match-tracker/feature/stats/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrGameNotFound indicates the requested game does not exist.
var ErrGameNotFound = errors.New("game not found")

// Service computes win-rate statistics.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new stats service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// All returns stats for every game.
func (s *Service) All(ctx context.Context) ([]models.GameStats, error) {
	var games []gamemodels.Game
	if err := s.db.WithContext(ctx).Order("id").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return s.build(ctx, games)
}

// ForGame returns stats for a single game.
func (s *Service) ForGame(ctx context.Context, gameID uint) (*models.GameStats, error) {
	var g gamemodels.Game
	err := s.db.WithContext(ctx).First(&g, gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}

	all, err := s.build(ctx, []gamemodels.Game{g})
	if err != nil {
		return nil, err
	}
	return &all[0], nil
}

// build aggregates matches in two flat queries (matches, players) instead
// of per-game per-player counts.
func (s *Service) build(ctx context.Context, games []gamemodels.Game) ([]models.GameStats, error) {
	var matches []matchmodels.Match
	if err := s.db.WithContext(ctx).Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	var players []playermodels.Player
	if err := s.db.WithContext(ctx).Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	playerName := make(map[uint]string, len(players))
	for _, p := range players {
		playerName[p.ID] = p.Name
	}

	type gameAgg struct {
		total      int
		lastPlayed time.Time
		wins       map[uint]int
	}
	byGame := make(map[uint]*gameAgg)
	for _, m := range matches {
		ga := byGame[m.GameID]
		if ga == nil {
			ga = &gameAgg{wins: make(map[uint]int)}
			byGame[m.GameID] = ga
		}
		ga.total++
		ga.wins[m.WinnerID]++
		if m.DatePlayed.After(ga.lastPlayed) {
			ga.lastPlayed = m.DatePlayed
		}
	}

	out := make([]models.GameStats, 0, len(games))
	for _, g := range games {
		gs := models.GameStats{
			GameID:      g.ID,
			GameName:    g.Name,
			PlayerStats: map[string]models.PlayerStat{},
		}

		if ga := byGame[g.ID]; ga != nil {
			gs.TotalMatches = ga.total
			last := ga.lastPlayed
			gs.LastPlayed = &last

			// Every known player appears, including those with zero wins.
			for id, name := range playerName {
				wins := ga.wins[id]
				gs.PlayerStats[name] = models.PlayerStat{
					Wins:    wins,
					WinRate: roundRate(wins, ga.total),
				}
			}
		}

		out = append(out, gs)
	}

	return out, nil
}

// roundRate returns the win percentage rounded to one decimal.
func roundRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(total)*1000) / 10
}
