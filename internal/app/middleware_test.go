package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/cinex/cinema-service/internal/mocks"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
	app          *Application
	authProvider *mocks.MockAuthProvider
}

func (s *MiddlewareTestSuite) SetupTest() {
	s.authProvider = &mocks.MockAuthProvider{}

	s.app = newTestApplication(func(a *Application) {
		a.authProvider = s.authProvider
	})
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) TestRequireAuthentication() {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := s.app.contextGetClaims(r)
		s.Equal(42, claims.UserID)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		authHeader string
		setupMocks func()
		wantStatus int
	}{
		{
			name:       "should reject request without bearer token",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "should reject request with malformed header",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "should reject invalid token",
			authHeader: "Bearer bad-token",
			setupMocks: func() {
				s.authProvider.VerifyTokenFunc = func(ctx context.Context, token string) (*domain.Claims, error) {
					return nil, errors.New("invalid token")
				}
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "should pass claims of a valid token to the next handler",
			authHeader: "Bearer good-token",
			setupMocks: func() {
				s.authProvider.VerifyTokenFunc = func(ctx context.Context, token string) (*domain.Claims, error) {
					s.Equal("good-token", token)
					return &domain.Claims{UserID: 42, Role: "USER"}, nil
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			s.app.requireAuthentication(next).ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)
		})
	}
}

func (s *MiddlewareTestSuite) TestRequireAdmin() {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "should forbid regular users", role: "USER", wantStatus: http.StatusForbidden},
		{name: "should allow admins", role: "ADMIN", wantStatus: http.StatusOK},
		{name: "should allow local admins", role: "LOCAL_ADMIN", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			s.authProvider.VerifyTokenFunc = func(ctx context.Context, token string) (*domain.Claims, error) {
				return &domain.Claims{UserID: 1, Role: tt.role}, nil
			}

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", "Bearer token")
			w := httptest.NewRecorder()

			s.app.requireAdmin(next).ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)
		})
	}
}
