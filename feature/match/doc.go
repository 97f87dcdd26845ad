// Package match provides CRUD for recorded plays.
//
// A match references a game and a single winning player; both references
// are validated on create and update. The list endpoint joins game and
// winner names for the UI, newest first.
//
// # HTTP Endpoints
//
//   - GET    /matches      : List matches with details (skip/limit paging).
//   - POST   /matches      : Record a match.
//   - GET    /matches/{id} : Get a match.
//   - PUT    /matches/{id} : Update a match (PATCH is an alias).
//   - DELETE /matches/{id} : Delete a match.
package match
