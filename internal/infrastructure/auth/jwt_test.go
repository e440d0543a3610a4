package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residconnect/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 7)

	token, err := svc.Generate("recTenant1", "alice@example.com", authorization.RoleTenant)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "recTenant1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, authorization.RoleTenant, claims.Role)
}

func TestJWTService_DefaultExpiryIsSevenDays(t *testing.T) {
	svc := NewJWTService("test-secret", 0)

	token, err := svc.Generate("recTenant1", "alice@example.com", authorization.RoleTenant)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	expectedExpiry := time.Now().Add(7 * 24 * time.Hour)
	assert.WithinDuration(t, expectedExpiry, claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("issuer-secret", 7)
	verifier := NewJWTService("other-secret", 7)

	token, err := issuer.Generate("recTenant1", "alice@example.com", authorization.RoleTenant)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 7)

	token, err := svc.Generate("recTenant1", "alice@example.com", authorization.RoleTenant)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", 7)

	claims := &Claims{
		UserID: "recTenant1",
		Email:  "alice@example.com",
		Role:   authorization.RoleTenant,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	svc := NewJWTService("test-secret", 7)

	claims := &Claims{
		UserID: "recTenant1",
		Email:  "alice@example.com",
		Role:   authorization.UserRole("admin"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 7)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "recTenant1",
		"role":    "tenant",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.Error(t, err)
}
