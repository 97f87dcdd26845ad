// Package storage provides the S3/MinIO client used for the optional
// thumbnail mirror.
//
// When a storage endpoint is configured, the collection sync mirrors remote
// thumbnail images into the configured bucket so the tracker UI does not hot
// link BoardGameGeek's CDN. The Client interface keeps the surface small and
// mockable; mocks live in the mocks subpackage.
package storage
