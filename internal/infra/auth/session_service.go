// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// jwtSessionService is a concrete implementation of the SessionService
// interface using the JWT standard. The storefront never issues tokens; it
// only verifies tokens minted by the identity provider and forwards them to
// the remote service.
type jwtSessionService struct {
	verifyKey string // Secret key for verifying session tokens.
}

// NewSessionService is the constructor for jwtSessionService.
func NewSessionService(cfg *config.Config) (service.SessionService, error) {
	if cfg.Session == nil || cfg.Session.VerifyKey == "" {
		return nil, errors.New("session verify key must be provided")
	}

	return &jwtSessionService{verifyKey: cfg.Session.VerifyKey}, nil
}

// Authenticate verifies a session token and returns the caller identity.
func (s *jwtSessionService) Authenticate(tokenString string) (*entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.verifyKey), nil
	})
	if err != nil {
		return nil, err
	}

	principal, err := token.Claims.GetSubject()
	if err != nil {
		return nil, err
	}
	if principal == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return &entity.Identity{
		Principal: principal,
		Token:     tokenString,
	}, nil
}
