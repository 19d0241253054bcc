package middleware

import (
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUser is the echo.Context key holding the authenticated account.
const ContextKeyUser = "user"

// AuthMiddleware provides middleware for token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the account behind
// it. The account is looked up on every request, so a deleted account is
// rejected even while its token is still within the expiry window.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		user, err := m.userRepo.FindByEmail(c.Request().Context(), claims.Email())
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrTokenInvalid
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// RequireAdmin rejects non-admin accounts. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(ContextKeyUser).(*entity.User)
		if !ok {
			return domainerrors.ErrForbidden
		}

		if user.Role != entity.RoleAdmin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// CurrentUser returns the account set by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(ContextKeyUser).(*entity.User)

	return user
}
