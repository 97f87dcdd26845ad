package models

import "time"

// PlayerStat is one player's record for a single game.
type PlayerStat struct {
	Wins int `json:"wins"`
	// WinRate is the win percentage, rounded to one decimal.
	WinRate float64 `json:"win_rate"`
}

// GameStats aggregates match outcomes for one game.
type GameStats struct {
	GameID       uint       `json:"game_id"`
	GameName     string     `json:"game_name"`
	TotalMatches int        `json:"total_matches"`
	LastPlayed   *time.Time `json:"last_played"`
	// PlayerStats maps player name to their record. Empty when the game
	// has no recorded matches.
	PlayerStats map[string]PlayerStat `json:"player_stats"`
}
