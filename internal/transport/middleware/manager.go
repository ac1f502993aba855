package middleware

import (
	"context"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
	"github.com/hourglass-hq/hourglass-backend/pkg/ctxutil"
)

// RequireManager returns domain.ErrForbidden if the context user is neither
// a manager nor an admin. Use inside REST handlers, not as HTTP middleware.
func RequireManager(ctx context.Context) error {
	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if !role.CanManageProjects() {
		return domain.ErrForbidden
	}
	return nil
}
