package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, claims, err := GenerateJWT(42, AccessToken, testSecret, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := ParseJWT(token, AccessToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), parsed.UserID)
	assert.Equal(t, AccessToken, parsed.TokenType)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestParseJWTRejectsWrongType(t *testing.T) {
	token, _, err := GenerateJWT(1, RefreshToken, testSecret, time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, AccessToken, testSecret)
	assert.True(t, errors.Is(err, ErrWrongTokenType))
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, _, err := GenerateJWT(1, AccessToken, testSecret, time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, AccessToken, "other-secret")
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestParseJWTRejectsExpired(t *testing.T) {
	token, _, err := GenerateJWT(1, AccessToken, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, AccessToken, testSecret)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", AccessToken, testSecret)
	assert.Error(t, err)
}
