package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestTokenExpiry_Unverified(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, "backend-secret", jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(exp)})

	got, err := TokenExpiry(tok, "")

	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_VerifiedWithSecret(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, "shared", jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(exp)})

	got, err := TokenExpiry(tok, "shared")
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	_, err = TokenExpiry(tok, "other")
	assert.Error(t, err)
}

func TestTokenExpiry_ExpiredTokenRejectedWhenVerifying(t *testing.T) {
	tok := signed(t, "shared", jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))})

	_, err := TokenExpiry(tok, "shared")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	tok := signed(t, "x", jwt.RegisteredClaims{Subject: "u1"})

	got, err := TokenExpiry(tok, "")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestTokenExpiry_Garbage(t *testing.T) {
	_, err := TokenExpiry("not-a-jwt", "")
	assert.Error(t, err)
}
