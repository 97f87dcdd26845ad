// Package player provides CRUD for the people whose matches are tracked.
//
// # HTTP Endpoints
//
//   - GET    /players      : List all players.
//   - POST   /players      : Create a player.
//   - GET    /players/{id} : Get a player.
//   - PUT    /players/{id} : Update a player (PATCH is an alias).
//   - DELETE /players/{id} : Delete a player (refused while match wins reference it).
package player
