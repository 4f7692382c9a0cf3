package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Auth: AuthConfig{
			JWTSecret:  strings.Repeat("s", 32),
			BcryptCost: 10,
		},
		Seed: SeedConfig{
			AdminUsername: "admin",
			AdminPassword: "secret",
			StaffUsername: "staff",
			StaffPassword: "secret",
		},
	}
}

func TestValidateOK(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidateShortJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	require.ErrorContains(t, cfg.Validate(), "jwt_secret")
}

func TestValidateBcryptCostOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.BcryptCost = 99
	require.ErrorContains(t, cfg.Validate(), "bcrypt_cost")
}

func TestValidateMissingAdminPassword(t *testing.T) {
	cfg := validConfig()
	cfg.Seed.AdminPassword = ""
	require.ErrorContains(t, cfg.Validate(), "admin_password")
}

func TestValidateStaffPasswordRequiredWithUsername(t *testing.T) {
	cfg := validConfig()
	cfg.Seed.StaffPassword = ""
	require.ErrorContains(t, cfg.Validate(), "staff_password")

	// Dropping the staff account entirely is fine.
	cfg.Seed.StaffUsername = ""
	require.NoError(t, cfg.Validate())
}

func TestValidateBadPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	require.ErrorContains(t, cfg.Validate(), "port")

	cfg.Server.Port = 70000
	require.ErrorContains(t, cfg.Validate(), "port")
}

func TestHasDiscordOAuth(t *testing.T) {
	var a AuthConfig
	require.False(t, a.HasDiscordOAuth())

	a.DiscordClientID = "id"
	a.DiscordClientSecret = "secret"
	require.False(t, a.HasDiscordOAuth())

	a.DiscordRedirectURI = "https://portal.example.com/callback"
	require.True(t, a.HasDiscordOAuth())
}
