package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry returns the expiry of a backend issued JWT. When secret is set
// the signature and standard claims are validated; otherwise the token is
// only decoded, since the backend owns the signing key. A token without an
// exp claim yields the zero time.
func TokenExpiry(tokenString string, secret string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}

	if secret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return time.Time{}, fmt.Errorf("decode session token: %w", err)
		}
	} else {
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil {
			return time.Time{}, fmt.Errorf("validate session token: %w", err)
		}
		if !token.Valid {
			return time.Time{}, errors.New("session token is invalid")
		}
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
