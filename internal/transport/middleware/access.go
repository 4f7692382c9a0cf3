package middleware

import (
	"context"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/pkg/ctxutil"
)

// RequireUser returns domain.ErrUnauthorized if the context carries no
// authenticated user. Use in handlers, not as HTTP middleware.
func RequireUser(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return userID, nil
}

// RequireStaff returns domain.ErrForbidden if the context user does not
// hold a staff-level role, or ErrUnauthorized if anonymous.
func RequireStaff(ctx context.Context) (string, error) {
	userID, err := RequireUser(ctx)
	if err != nil {
		return "", err
	}
	if !domain.UserRole(ctxutil.UserRoleFromCtx(ctx)).IsStaff() {
		return "", domain.ErrForbidden
	}
	return userID, nil
}

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
func RequireAdmin(ctx context.Context) (string, error) {
	userID, err := RequireUser(ctx)
	if err != nil {
		return "", err
	}
	if domain.UserRole(ctxutil.UserRoleFromCtx(ctx)) != domain.RoleAdmin {
		return "", domain.ErrForbidden
	}
	return userID, nil
}
