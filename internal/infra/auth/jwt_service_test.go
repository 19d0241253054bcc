package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenTTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.TokenTTL = time.Hour

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Generate("customer@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "customer@example.com", claims.Email())
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Generate("customer@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	other := newTestTokenService(t, time.Hour)
	other.secret = "different-secret"

	token, err := svc.Generate("customer@example.com")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_Malformed(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}

func TestJWTService_Validate_RejectsUnexpectedMethod(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	// An unsigned token must never pass, even with a matching subject.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "customer@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_EmptySubject(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Generate("")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
