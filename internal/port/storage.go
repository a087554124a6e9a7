package port

import "context"

// ObjectStorage abstracts read access to documents kept in cloud storage.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}
