package models

// ItemError describes one collection item that could not be synced.
type ItemError struct {
	// ExternalID is the remote id, when the item got far enough to have one.
	ExternalID string `json:"external_id,omitempty"`
	// Name is the item name, when available.
	Name string `json:"name,omitempty"`
	// Reason describes the failure.
	Reason string `json:"reason"`
}

// SyncReport is the ephemeral result of one sync run. It is returned to
// the caller and discarded, never persisted.
type SyncReport struct {
	GamesAdded     int `json:"games_added"`
	GamesUpdated   int `json:"games_updated"`
	GamesUnchanged int `json:"games_unchanged"`
	GamesFailed    int `json:"games_failed"`

	// Errors lists per-item failures; they never abort the run.
	Errors []ItemError `json:"errors"`
	// Warnings lists soft conditions (duplicate external ids, cancelled
	// runs, failed thumbnail mirroring).
	Warnings []string `json:"warnings"`

	// Degraded is true when the run fetched unauthenticated.
	Degraded bool `json:"degraded"`

	ExecutionTime string `json:"execution_time"`
}
