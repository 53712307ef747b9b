// Package auth verifies bearer tokens issued by the auth service. Token
// issuance, sessions and OTP flows all live on the other side of this
// boundary; this side only checks signatures and extracts claims.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinex/cinema-service/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type JWTAuthProvider struct {
	secret []byte
}

func NewJWTAuthProvider(secret string) *JWTAuthProvider {
	return &JWTAuthProvider{
		secret: []byte(secret),
	}
}

func (p *JWTAuthProvider) VerifyToken(ctx context.Context, token string) (*domain.Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &domain.Claims{}

	if sub, ok := mapClaims["sub"].(float64); ok {
		claims.UserID = int(sub)
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}

	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
