// Package collection synchronizes the local game catalog with a user's
// BoardGameGeek collection.
//
// One sync run is a sequential pipeline: the bgg client fetches the remote
// collection as a lazy item sequence, the reconcile package classifies each
// item against the games table (added, updated, unchanged) and commits the
// mutation, and the service aggregates per-item outcomes into a SyncReport.
//
// # Failure posture
//
// Partial success is the default: a malformed item or a failed per-item
// write is recorded in the report and the run continues. Only conditions
// that prevent any work (rejected credentials, an unreachable remote, an
// already running sync) abort the run, each with a distinct error.
//
// Each item is committed before the next is consumed, so an interrupted
// run keeps everything it already wrote. Cancellation is observed at item
// boundaries.
//
// # HTTP Endpoints
//
//   - POST /collection/sync : Runs one sync and returns the report.
package collection
