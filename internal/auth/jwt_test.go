package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndValidateAccessToken(t *testing.T) {
	m := NewJWTManager(testSecret, "trustportal", time.Hour)

	token, err := m.GenerateAccessToken("user-1", "staff")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
	require.Equal(t, "staff", role)
}

func TestValidateAccessTokenEmpty(t *testing.T) {
	m := NewJWTManager(testSecret, "trustportal", time.Hour)

	_, _, err := m.ValidateAccessToken("")
	require.Error(t, err)
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	m := NewJWTManager(testSecret, "trustportal", time.Hour)
	other := NewJWTManager("ffffffffffffffffffffffffffffffff", "trustportal", time.Hour)

	token, err := m.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, _, err = other.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestValidateAccessTokenWrongIssuer(t *testing.T) {
	m := NewJWTManager(testSecret, "trustportal", time.Hour)
	other := NewJWTManager(testSecret, "someone-else", time.Hour)

	token, err := other.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, _, err = m.ValidateAccessToken(token)
	require.Error(t, err)
	require.Contains(t, err.Error(), "issuer")
}

func TestValidateAccessTokenExpired(t *testing.T) {
	m := NewJWTManager(testSecret, "trustportal", -time.Minute)

	token, err := m.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, _, err = m.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestValidateAccessTokenEmptySubject(t *testing.T) {
	m := NewJWTManager(testSecret, "trustportal", time.Hour)

	token, err := m.GenerateAccessToken("", "user")
	require.NoError(t, err)

	_, _, err = m.ValidateAccessToken(token)
	require.Error(t, err)
}
