package port

import (
	"context"
	"io"
)

// UploadInput describes one object to store. CacheControl is passed through
// to the bucket as-is; empty leaves the provider default.
type UploadInput struct {
	Bucket       string
	Key          string
	Body         io.Reader
	ContentType  string
	CacheControl string
	Size         int64
}

// UploadOutput holds the public location of a stored object.
type UploadOutput struct {
	Location string
}

// ObjectStorage stores gallery media in a bucket.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
