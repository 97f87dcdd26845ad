package models

import "time"

// Game is a board game in the local catalog.
//
// A game is created either manually by the user (ExternalID nil) or by the
// collection sync on first sight of a new BGG id. ExternalID is unique
// among rows where present; it is the only join key against the remote
// catalog. Games are never matched by name.
type Game struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;index" json:"name"`

	// ExternalID is the BGG identifier, nil for manually created games.
	ExternalID *string `gorm:"uniqueIndex;size:32" json:"external_id"`

	ThumbnailURL  string `json:"thumbnail_url"`
	YearPublished *int   `json:"year_published"`

	// LastSyncedAt records when the sync last verified this game against
	// the remote catalog ("last verified", not "last changed").
	LastSyncedAt *time.Time `json:"last_synced_at"`
}

// TableName overrides the table name.
func (Game) TableName() string {
	return "games"
}

// GameCreate is the request payload for creating a game.
type GameCreate struct {
	Name          string `json:"name"`
	ThumbnailURL  string `json:"thumbnail_url"`
	YearPublished *int   `json:"year_published"`
}

// GameUpdate is the request payload for updating a game. Nil fields are
// left untouched.
type GameUpdate struct {
	Name          *string `json:"name"`
	ThumbnailURL  *string `json:"thumbnail_url"`
	YearPublished *int    `json:"year_published"`
}
