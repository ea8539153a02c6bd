package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSigningKey = []byte("test-signing-key")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSigningKey, "user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSigningKey, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken(testSigningKey, "user-123")
	require.NoError(t, err)

	_, err = ParseToken([]byte("some-other-key"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSigningKey, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	require.NoError(t, err)

	_, err = ParseToken(testSigningKey, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_MissingSubject(t *testing.T) {
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	require.NoError(t, err)

	_, err = ParseToken(testSigningKey, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSigningMethod(t *testing.T) {
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	// "none" tokens must never be accepted.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(testSigningKey, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
