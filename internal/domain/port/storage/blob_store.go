package storage

import (
	"context"
	"io"
)

// BlobStore abstracts the object storage used for business card images.
// Put returns a durable retrieval URL; Delete removes by key.
type BlobStore interface {
	// Put uploads the content under the given key and returns its public URL
	Put(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// Delete removes the object stored under the given key
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for an already stored key
	URL(key string) string
}
