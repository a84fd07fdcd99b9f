package domain

import "context"

// BlobStore durably stores an image buffer and returns its retrieval URL or path.
// Remove is best-effort on the caller's side: a missing blob is not an error.
type BlobStore interface {
	Store(ctx context.Context, filename string, data []byte) (url string, err error)
	Remove(ctx context.Context, url string) error
}
