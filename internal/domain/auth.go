package domain

import "context"

const (
	RoleAdmin      = "ADMIN"
	RoleLocalAdmin = "LOCAL_ADMIN"
)

// Claims is the verified identity of a caller. Operations that need the
// caller receive claims explicitly; there is no ambient security context.
type Claims struct {
	UserID int
	Email  string
	Role   string
}

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin || c.Role == RoleLocalAdmin
}

// AuthProvider verifies bearer tokens issued by the auth service.
type AuthProvider interface {
	VerifyToken(ctx context.Context, token string) (*Claims, error)
}
