package mocks

import (
	"context"
	"io"

	"github.com/cinex/cinema-service/internal/domain"
)

type MockMediaStore struct {
	domain.MediaStore
	UploadFunc func(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

func (m *MockMediaStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	return m.UploadFunc(ctx, filename, contentType, r)
}
