package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	gamemodels "match-tracker/feature/game/models"
	"match-tracker/feature/match/models"
	playermodels "match-tracker/feature/player/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the requested match does not exist.
	ErrNotFound = errors.New("match not found")
	// ErrGameNotFound indicates the referenced game does not exist.
	ErrGameNotFound = errors.New("game not found")
	// ErrPlayerNotFound indicates the referenced winner does not exist.
	ErrPlayerNotFound = errors.New("player not found")
)

// Service handles match operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new match service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns matches joined with game and winner names, newest first.
func (s *Service) List(ctx context.Context, skip, limit int) ([]models.MatchWithDetails, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	var details []models.MatchWithDetails
	err := s.db.WithContext(ctx).
		Table("matches").
		Select("matches.id, games.name AS game_name, players.name AS winner_name, matches.date_played").
		Joins("JOIN games ON matches.game_id = games.id").
		Joins("JOIN players ON matches.winner_id = players.id").
		Order("matches.date_played DESC").
		Offset(skip).
		Limit(limit).
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return details, nil
}

// Get returns one match by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Match, error) {
	var m models.Match
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return &m, nil
}

// Create records a match after validating the game and winner exist.
func (s *Service) Create(ctx context.Context, in models.MatchCreate) (*models.Match, error) {
	if err := s.checkGame(ctx, in.GameID); err != nil {
		return nil, err
	}
	if err := s.checkPlayer(ctx, in.WinnerID); err != nil {
		return nil, err
	}

	played := time.Now().UTC()
	if in.DatePlayed != nil {
		played = *in.DatePlayed
	}

	m := models.Match{GameID: in.GameID, WinnerID: in.WinnerID, DatePlayed: played}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.logger.Info("Match recorded",
		zap.Uint("id", m.ID),
		zap.Uint("game_id", m.GameID),
		zap.Uint("winner_id", m.WinnerID))
	return &m, nil
}

// Update applies the non-nil fields of the payload, validating any new
// game or winner reference.
func (s *Service) Update(ctx context.Context, id uint, in models.MatchUpdate) (*models.Match, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.GameID != nil {
		if err := s.checkGame(ctx, *in.GameID); err != nil {
			return nil, err
		}
		m.GameID = *in.GameID
	}
	if in.WinnerID != nil {
		if err := s.checkPlayer(ctx, *in.WinnerID); err != nil {
			return nil, err
		}
		m.WinnerID = *in.WinnerID
	}
	if in.DatePlayed != nil {
		m.DatePlayed = *in.DatePlayed
	}

	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fmt.Errorf("failed to update match %d: %w", id, err)
	}
	return m, nil
}

// Delete removes a match.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&models.Match{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return nil
}

func (s *Service) checkGame(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&gamemodels.Game{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check game %d: %w", id, err)
	}
	if count == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (s *Service) checkPlayer(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&playermodels.Player{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check player %d: %w", id, err)
	}
	if count == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
