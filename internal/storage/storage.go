package storage

import (
	"context"
	"io"
)

// Storage abstracts saving and deleting uploaded gallery images. The local
// filesystem implementation can be swapped for S3 / Cloudflare R2 later.
type Storage interface {
	// Save stores the file and returns its public URL.
	// key is a unique path within the store (e.g. "projects/42/before-ab12.jpg").
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored at key.
	Delete(ctx context.Context, key string) error
}
