package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT("customer@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "customer@example.com", claims.Email)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestParseJWTExpired(t *testing.T) {
	JwtKey = []byte("test-secret")

	claims := &Claims{
		Email: "customer@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	require.NoError(t, err)

	_, err = ParseJWT(tokenString)
	assert.Error(t, err)
}

func TestParseJWTTamperedSignature(t *testing.T) {
	JwtKey = []byte("test-secret")
	token, err := GenerateJWT("customer@example.com")
	require.NoError(t, err)

	JwtKey = []byte("other-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)

	JwtKey = []byte("test-secret")
}

func TestParseJWTMalformed(t *testing.T) {
	JwtKey = []byte("test-secret")

	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)
}
