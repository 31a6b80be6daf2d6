package objectstore

import (
	"context"
	"io"
)

// Uploader sube bytes bajo una key en un bucket remoto.
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error
}
