package player

import (
	"context"
	"errors"
	"fmt"
	"strings"

	matchmodels "match-tracker/feature/match/models"
	"match-tracker/feature/player/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the requested player does not exist.
	ErrNotFound = errors.New("player not found")
	// ErrInUse indicates the player is referenced by recorded matches.
	ErrInUse = errors.New("player has recorded match wins and cannot be deleted")
	// ErrInvalidName indicates an empty or blank player name.
	ErrInvalidName = errors.New("player name must not be empty")
)

// Service handles player operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new player service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns all players.
func (s *Service) List(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	if err := s.db.WithContext(ctx).Order("id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// Get returns one player by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Player, error) {
	var p models.Player
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return &p, nil
}

// Create inserts a new player.
func (s *Service) Create(ctx context.Context, in models.PlayerCreate) (*models.Player, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	p := models.Player{Name: name}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	s.logger.Info("Player created", zap.Uint("id", p.ID), zap.String("name", p.Name))
	return &p, nil
}

// Update applies the non-nil fields of the payload.
func (s *Service) Update(ctx context.Context, id uint, in models.PlayerUpdate) (*models.Player, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		p.Name = name
	}

	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return p, nil
}

// Delete removes a player. Players that have won matches are kept to
// preserve match history.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	var wins int64
	if err := s.db.WithContext(ctx).Model(&matchmodels.Match{}).
		Where("winner_id = ?", id).Count(&wins).Error; err != nil {
		return fmt.Errorf("failed to count matches for player %d: %w", id, err)
	}
	if wins > 0 {
		return ErrInUse
	}

	if err := s.db.WithContext(ctx).Delete(&models.Player{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}

	s.logger.Info("Player deleted", zap.Uint("id", id))
	return nil
}
