package models

import "time"

// Match is one recorded play of a game with a single winner.
type Match struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GameID     uint      `gorm:"not null;index" json:"game_id"`
	WinnerID   uint      `gorm:"not null;index" json:"winner_id"`
	DatePlayed time.Time `json:"date_played"`
}

// TableName overrides the table name.
func (Match) TableName() string {
	return "matches"
}

// MatchCreate is the request payload for recording a match.
// DatePlayed defaults to now when omitted.
type MatchCreate struct {
	GameID     uint       `json:"game_id"`
	WinnerID   uint       `json:"winner_id"`
	DatePlayed *time.Time `json:"date_played"`
}

// MatchUpdate is the request payload for updating a match. Nil fields are
// left untouched.
type MatchUpdate struct {
	GameID     *uint      `json:"game_id"`
	WinnerID   *uint      `json:"winner_id"`
	DatePlayed *time.Time `json:"date_played"`
}

// MatchWithDetails is a match joined with game and winner names for the
// list view.
type MatchWithDetails struct {
	ID         uint      `json:"id"`
	GameName   string    `json:"game_name"`
	WinnerName string    `json:"winner_name"`
	DatePlayed time.Time `json:"date_played"`
}
