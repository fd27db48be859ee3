package service

import "storefront/internal/domain/entity"

// SessionService validates caller session tokens. Login state is binary: a
// token either yields an identity or the caller is anonymous.
type SessionService interface {
	// Authenticate verifies a session token and returns the caller identity.
	Authenticate(tokenString string) (*entity.Identity, error)
}
