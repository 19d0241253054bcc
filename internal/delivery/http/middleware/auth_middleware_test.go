package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func claimsFor(email string) *service.Claims {
	return &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: email}}
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c, _ := newAuthTestContext("")

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c, _ := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	tokenSvc.EXPECT().Validate("expired-token").Return(nil, errors.New("token is expired"))

	c, _ := newAuthTestContext("Bearer expired-token")

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_DeletedAccount(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	tokenSvc.EXPECT().Validate("valid-token").Return(claimsFor("gone@example.com"), nil)
	userRepo.EXPECT().FindByEmail(mock.Anything, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	c, _ := newAuthTestContext("Bearer valid-token")

	// The token itself is still valid, but the account behind it is gone.
	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	user := &entity.User{ID: uuid.New(), Email: "user@example.com", Role: entity.RoleUser, Approved: true}

	tokenSvc.EXPECT().Validate("valid-token").Return(claimsFor("user@example.com"), nil)
	userRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(user, nil)

	c, rec := newAuthTestContext("Bearer valid-token")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, CurrentUser(c))
}

func TestAuthMiddleware_RequireAdmin_NonAdmin(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c, _ := newAuthTestContext("")
	c.Set(ContextKeyUser, &entity.User{Role: entity.RoleUser, Approved: true})

	err := m.RequireAdmin(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireAdmin_NoUserInContext(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c, _ := newAuthTestContext("")

	err := m.RequireAdmin(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireAdmin_Admin(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c, rec := newAuthTestContext("")
	c.Set(ContextKeyUser, &entity.User{Role: entity.RoleAdmin})

	err := m.RequireAdmin(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
