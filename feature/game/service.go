package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"match-tracker/feature/game/models"
	matchmodels "match-tracker/feature/match/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the requested game does not exist.
	ErrNotFound = errors.New("game not found")
	// ErrInUse indicates the game is referenced by recorded matches.
	ErrInUse = errors.New("game has recorded matches and cannot be deleted")
	// ErrInvalidName indicates an empty or blank game name.
	ErrInvalidName = errors.New("game name must not be empty")
)

// Service handles game operations.
//
// Manual CRUD only: the external_id and last_synced_at columns are owned
// by the collection sync and never written here.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new game service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns all games.
func (s *Service) List(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := s.db.WithContext(ctx).Order("id").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// Get returns one game by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Game, error) {
	var g models.Game
	err := s.db.WithContext(ctx).First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}
	return &g, nil
}

// Create inserts a manually added game (no external id).
func (s *Service) Create(ctx context.Context, in models.GameCreate) (*models.Game, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	g := models.Game{
		Name:          name,
		ThumbnailURL:  in.ThumbnailURL,
		YearPublished: in.YearPublished,
	}
	if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s.logger.Info("Game created", zap.Uint("id", g.ID), zap.String("name", g.Name))
	return &g, nil
}

// Update applies the non-nil fields of the payload.
func (s *Service) Update(ctx context.Context, id uint, in models.GameUpdate) (*models.Game, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		g.Name = name
	}
	if in.ThumbnailURL != nil {
		g.ThumbnailURL = *in.ThumbnailURL
	}
	if in.YearPublished != nil {
		g.YearPublished = in.YearPublished
	}

	if err := s.db.WithContext(ctx).Save(g).Error; err != nil {
		return nil, fmt.Errorf("failed to update game %d: %w", id, err)
	}
	return g, nil
}

// Delete removes a game. Games with recorded matches are kept to preserve
// match history. The collection sync never deletes games; a game dropped
// from the remote collection simply stops being refreshed.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	var matches int64
	if err := s.db.WithContext(ctx).Model(&matchmodels.Match{}).
		Where("game_id = ?", id).Count(&matches).Error; err != nil {
		return fmt.Errorf("failed to count matches for game %d: %w", id, err)
	}
	if matches > 0 {
		return ErrInUse
	}

	if err := s.db.WithContext(ctx).Delete(&models.Game{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete game %d: %w", id, err)
	}

	s.logger.Info("Game deleted", zap.Uint("id", id))
	return nil
}
