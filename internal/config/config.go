package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	Seed   SeedConfig   `yaml:"seed"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"300"`
}

// AuthConfig holds authentication and Discord OAuth settings.
type AuthConfig struct {
	JWTSecret           string        `yaml:"jwt_secret"            env:"AUTH_JWT_SECRET"            env-required:"true"`
	JWTIssuer           string        `yaml:"jwt_issuer"            env:"AUTH_JWT_ISSUER"            env-default:"trustportal"`
	AccessTokenTTL      time.Duration `yaml:"access_token_ttl"      env:"AUTH_ACCESS_TOKEN_TTL"      env-default:"24h"`
	BcryptCost          int           `yaml:"bcrypt_cost"           env:"AUTH_BCRYPT_COST"           env-default:"10"`
	DiscordClientID     string        `yaml:"discord_client_id"     env:"AUTH_DISCORD_CLIENT_ID"`
	DiscordClientSecret string        `yaml:"discord_client_secret" env:"AUTH_DISCORD_CLIENT_SECRET"`
	DiscordRedirectURI  string        `yaml:"discord_redirect_uri"  env:"AUTH_DISCORD_REDIRECT_URI"`
}

// SeedConfig holds the bootstrap account credentials.
type SeedConfig struct {
	AdminUsername string `yaml:"admin_username" env:"SEED_ADMIN_USERNAME" env-default:"admin"`
	AdminEmail    string `yaml:"admin_email"    env:"SEED_ADMIN_EMAIL"    env-default:"admin@ownersalliance.com"`
	AdminPassword string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD" env-required:"true"`
	StaffUsername string `yaml:"staff_username" env:"SEED_STAFF_USERNAME" env-default:"staff"`
	StaffEmail    string `yaml:"staff_email"    env:"SEED_STAFF_EMAIL"    env-default:"staff@ownersalliance.com"`
	StaffPassword string `yaml:"staff_password" env:"SEED_STAFF_PASSWORD"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// HasDiscordOAuth reports whether the Discord OAuth credentials are
// fully configured.
func (c AuthConfig) HasDiscordOAuth() bool {
	return c.DiscordClientID != "" && c.DiscordClientSecret != "" && c.DiscordRedirectURI != ""
}
