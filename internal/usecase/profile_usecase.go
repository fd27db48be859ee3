package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProfileUsecase defines profile and role operations. Role checks here feed
// UI gating only; the remote service is the authority on every mutation.
type ProfileUsecase interface {
	GetCallerProfile(ctx context.Context) (*entity.UserProfile, error)
	SaveCallerProfile(ctx context.Context, profile entity.UserProfile) error
	GetUserProfile(ctx context.Context, principal string) (*entity.UserProfile, error)
	GetCallerRole(ctx context.Context) (entity.Role, error)
	IsCallerAdmin(ctx context.Context) (bool, error)
	AssignRole(ctx context.Context, principal string, role entity.Role) error
}
