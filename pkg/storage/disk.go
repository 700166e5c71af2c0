// Package storage abstracts where uploaded media lives.
//
// Two drivers:
//   - "local": local filesystem, served back under STORAGE_URL (default)
//   - "s3":    S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Objects written through Put are publicly readable; URL returns the
// address the storefront embeds.
package storage

import (
	"context"
	"io"
)

// Disk is the driver contract.
type Disk interface {
	// Put writes r to path with the declared content type. The stored
	// object is publicly readable.
	Put(ctx context.Context, path, contentType string, r io.Reader) error

	// Get returns the full content at path.
	Get(ctx context.Context, path string) ([]byte, error)

	// Exists reports whether an object exists at path.
	Exists(ctx context.Context, path string) bool

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
