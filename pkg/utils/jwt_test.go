package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims *Claims, secret string, method jwt.SigningMethod) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateToken_AcceptsValidToken(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, &Claims{
		UserID:   userID,
		Username: "staff1",
		Role:     "STAFF",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret, jwt.SigningMethodHS256)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff1", claims.Username)
	assert.Equal(t, "STAFF", claims.Role)
}

func TestValidateToken_RejectsExpiredToken(t *testing.T) {
	token := signToken(t, &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret, jwt.SigningMethodHS256)

	_, err := ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	token := signToken(t, &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, "other-secret", jwt.SigningMethodHS256)

	_, err := ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
