// Package game provides CRUD for the local game catalog.
//
// Games carry an optional external_id pointing into the BGG namespace;
// that column and last_synced_at are owned by the collection sync. Manual
// CRUD here never touches them, and a manually created game is never
// merged with a remote one by name.
//
// # HTTP Endpoints
//
//   - GET    /games      : List all games.
//   - POST   /games      : Create a game.
//   - GET    /games/{id} : Get a game.
//   - PUT    /games/{id} : Update a game (PATCH is an alias).
//   - DELETE /games/{id} : Delete a game (refused while matches reference it).
package game
