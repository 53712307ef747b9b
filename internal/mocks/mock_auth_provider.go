package mocks

import (
	"context"

	"github.com/cinex/cinema-service/internal/domain"
)

type MockAuthProvider struct {
	domain.AuthProvider
	VerifyTokenFunc func(ctx context.Context, token string) (*domain.Claims, error)
}

func (m *MockAuthProvider) VerifyToken(ctx context.Context, token string) (*domain.Claims, error) {
	return m.VerifyTokenFunc(ctx, token)
}
