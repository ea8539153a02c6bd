// Package jwthelper issues and validates the stateless bearer tokens used
// for authentication. Tokens are HS256-signed, carry the user id as the
// subject, and expire after 7 days. There is no revocation list; expiry is
// the only lifetime bound.
package jwthelper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

type UserClaims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs a fresh token for the given user.
func GenerateToken(signingKey []byte, userID string) (string, error) {
	now := time.Now()
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(signingKey)
}

// ParseToken validates the signature and expiry and returns the claims.
// Any failure collapses to ErrInvalidToken; callers treat all of them as
// an authentication failure.
func ParseToken(signingKey []byte, tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return signingKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
