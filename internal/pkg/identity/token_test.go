//go:build unit

package identity_test

import (
	"testing"
	"time"

	"tutorhub/internal/pkg/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func mintToken(t *testing.T, secret string, userID uuid.UUID, role string, expiresAt time.Time) string {
	t.Helper()
	claims := identity.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerifier(t *testing.T) {
	v := identity.NewVerifier(testSecret)
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		token := mintToken(t, testSecret, userID, "tutor", time.Now().Add(time.Hour))

		principal, err := v.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, principal.UserID)
		assert.Equal(t, identity.RoleTutor, principal.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token := mintToken(t, testSecret, userID, "student", time.Now().Add(-time.Hour))

		_, err := v.Verify(token)
		assert.ErrorIs(t, err, identity.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := mintToken(t, "another-secret", userID, "student", time.Now().Add(time.Hour))

		_, err := v.Verify(token)
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		token := mintToken(t, testSecret, userID, "admin", time.Now().Add(time.Hour))

		_, err := v.Verify(token)
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := v.Verify("not.a.token")
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, identity.Claims{
			UserID: userID,
			Role:   "student",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})
}

func TestParseRole(t *testing.T) {
	role, err := identity.ParseRole("student")
	require.NoError(t, err)
	assert.Equal(t, identity.RoleStudent, role)

	role, err = identity.ParseRole("tutor")
	require.NoError(t, err)
	assert.Equal(t, identity.RoleTutor, role)

	_, err = identity.ParseRole("admin")
	assert.ErrorIs(t, err, identity.ErrInvalidRole)

	_, err = identity.ParseRole("")
	assert.ErrorIs(t, err, identity.ErrInvalidRole)
}
