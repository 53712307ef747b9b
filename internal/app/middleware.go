package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
)

type contextKey string

const claimsContextKey = contextKey("claims")

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requireAuthentication verifies the bearer token and stores the
// caller's claims in the request context.
func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := app.authProvider.VerifyToken(r.Context(), token)
		if err != nil {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, *claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *Application) requireAdmin(next http.Handler) http.Handler {
	return app.requireAuthentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := app.contextGetClaims(r)

		if !claims.IsAdmin() {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	}))
}

func (app *Application) contextGetClaims(r *http.Request) domain.Claims {
	claims, ok := r.Context().Value(claimsContextKey).(domain.Claims)
	if !ok {
		panic("missing claims in request context")
	}

	return claims
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	return app.logger.With("request_id", middleware.GetReqID(r.Context()))
}
