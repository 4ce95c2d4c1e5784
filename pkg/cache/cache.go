// Package cache provides a small key-value cache for analysis results.
//
// Loading a large unitig file and verifying every arc takes time, while the
// answers only depend on the file contents and a few options. The pipeline
// stores its reports, path covers and rendered artifacts under keys derived
// from a content hash of the input, so repeated runs on the same file are
// served from disk.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, used by the CLI
//   - [NullCache]: stores nothing, used when caching is disabled
//
// # Keys
//
// A [Keyer] turns an input hash and the options that influence a result
// into a key. Wrap it with [NewScopedKeyer] to keep namespaces apart, for
// example one per program version.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired and unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Time-to-live for each kind of entry. Results are pure functions of the
// input hash, so the TTLs only bound disk usage.
const (
	TTLReport   = 30 * 24 * time.Hour
	TTLCover    = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
