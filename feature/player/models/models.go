package models

// Player is a person whose match results are tracked.
type Player struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

// TableName overrides the table name.
func (Player) TableName() string {
	return "players"
}

// PlayerCreate is the request payload for creating a player.
type PlayerCreate struct {
	Name string `json:"name"`
}

// PlayerUpdate is the request payload for updating a player.
type PlayerUpdate struct {
	Name *string `json:"name"`
}
