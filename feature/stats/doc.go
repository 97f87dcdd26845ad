// Package stats computes simple win-rate aggregation over recorded matches.
//
// For each game it reports the total match count, the most recent play
// date, and per-player wins with a percentage win rate. Aggregation runs
// as a single group-by over the matches table rather than per-player
// counting queries.
//
// # HTTP Endpoints
//
//   - GET /stats          : Stats for every game.
//   - GET /stats/{gameID} : Stats for one game.
package stats
