package impl

import (
	"context"
	"log/slog"

	"storefront/internal/cache"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/identity"
	"storefront/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	store  service.StoreService
	cache  *cache.Store
	logger *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	store service.StoreService,
	cacheStore *cache.Store,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		store:  store,
		cache:  cacheStore,
		logger: logger,
	}
}

// GetCallerProfile returns the caller's profile, nil result mapped to a
// typed not-found so new users can be prompted to create one.
func (srv *profileService) GetCallerProfile(ctx context.Context) (*entity.UserProfile, error) {
	key := cache.UserProfileKey(callerPrincipal(ctx))
	profile, err := cache.Query(ctx, srv.cache, key, srv.store.GetCallerUserProfile)
	if err != nil {
		return nil, domainerrors.ClassifyRemote(err)
	}
	if profile == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("caller has no profile")
	}

	return profile, nil
}

// SaveCallerProfile saves the caller's profile and drops the cached copy.
func (srv *profileService) SaveCallerProfile(ctx context.Context, profile entity.UserProfile) error {
	ident, ok := identity.FromContext(ctx)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("saving a profile requires a signed-in caller")
	}

	srv.logger.Info("saving caller profile", "principal", ident.Principal)

	if err := srv.store.SaveCallerUserProfile(ctx, profile); err != nil {
		return domainerrors.ClassifyRemote(err)
	}

	srv.cache.Invalidate(cache.UserProfileKey(ident.Principal))

	return nil
}

// GetUserProfile returns another principal's profile.
func (srv *profileService) GetUserProfile(ctx context.Context, principal string) (*entity.UserProfile, error) {
	profile, err := cache.Query(ctx, srv.cache, cache.UserProfileKey(principal), func(ctx context.Context) (*entity.UserProfile, error) {
		return srv.store.GetUserProfile(ctx, principal)
	})
	if err != nil {
		return nil, domainerrors.ClassifyRemote(err)
	}
	if profile == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("user has no profile")
	}

	return profile, nil
}

// GetCallerRole returns the caller's role as reported by the remote service.
func (srv *profileService) GetCallerRole(ctx context.Context) (entity.Role, error) {
	key := cache.ForCaller(cache.KeyRole, callerPrincipal(ctx))
	role, err := cache.Query(ctx, srv.cache, key, srv.store.GetCallerUserRole)
	if err != nil {
		return "", domainerrors.ClassifyRemote(err)
	}

	return role, nil
}

// IsCallerAdmin reports the advisory admin capability for UI gating. The
// remote service independently enforces authorization on every mutation.
func (srv *profileService) IsCallerAdmin(ctx context.Context) (bool, error) {
	if _, ok := identity.FromContext(ctx); !ok {
		return false, nil
	}

	key := cache.ForCaller(cache.KeyAdmin, callerPrincipal(ctx))
	isAdmin, err := cache.Query(ctx, srv.cache, key, srv.store.IsCallerAdmin)
	if err != nil {
		return false, domainerrors.ClassifyRemote(err)
	}

	return isAdmin, nil
}

// AssignRole assigns a role to a principal; admin-gated by the remote
// service.
func (srv *profileService) AssignRole(ctx context.Context, principal string, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	srv.logger.Info("assigning role", "principal", principal, "role", role.String())

	if err := srv.store.AssignCallerUserRole(ctx, principal, role); err != nil {
		return domainerrors.ClassifyRemote(err)
	}

	// Role grants affect whichever session the target principal holds.
	srv.cache.InvalidatePrefix(cache.KeyRole)
	srv.cache.InvalidatePrefix(cache.KeyAdmin)

	return nil
}
