package domain

import (
	"context"
	"io"
)

// MediaStore accepts a file and returns a durable URL for it. Storage
// lives in the image service; this is only the relay contract.
type MediaStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
