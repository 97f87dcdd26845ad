// Package bgg implements the BoardGameGeek XML API v2 collection client.
//
// The client issues at most one request every MinRequestSpacing (BGG
// throttles anything faster) and handles the API's asynchronous export
// protocol: a collection request may answer 202 until the export is
// computed, and 429 when the caller is throttled. Both are retried with
// exponential backoff up to a bounded number of attempts; a 429 honors the
// server's Retry-After hint when present. Rejected credentials (401/403)
// surface immediately as ErrAuthRejected and are never retried.
//
// A successful fetch yields a Collection: a lazy, finite, non-restartable
// sequence of CatalogItems decoded straight off the response body.
// Individually malformed items surface as *ParseError and do not abort the
// sequence.
package bgg
