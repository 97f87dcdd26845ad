// Package reconcile decides, for one remote catalog item at a time, whether
// the local games table needs an insert, a partial update, or just a
// last-verified timestamp refresh.
//
// The external id is the only join key. Per-item application is idempotent:
// a second pass over an unchanged collection classifies every item as
// unchanged.
package reconcile
