// Package auth implements the stateless bearer-token scheme used by the
// editing endpoints: HS256-signed tokens carrying an expiry, verified
// entirely from the token bytes plus the server secret. There is no session
// store and no revocation list; tokens simply expire.
package auth

import (
	"errors"
	"time"

	"livecontent/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the subject role the
// token was issued for.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints a signed token for the given subject that expires
// after validityDuration.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks the token signature and expiry and returns its claims.
// Any failure (malformed structure, bad signature, expired) comes back as
// common.ErrUnauthorized so callers cannot distinguish why a token was bad.
func VerifyToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	if !token.Valid {
		return nil, common.ErrUnauthorized
	}

	return claims, nil
}
