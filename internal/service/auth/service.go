package auth

import (
	"context"
	"log/slog"

	"github.com/ownersalliance/trustportal/internal/auth"
	"github.com/ownersalliance/trustportal/internal/config"
	"github.com/ownersalliance/trustportal/internal/domain"
)

// userStore defines the store operations needed by the auth service.
type userStore interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, p domain.UserParams) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, p domain.UserParams) (*domain.User, error)
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
	CreateUserSession(ctx context.Context, p domain.UserSessionParams) (*domain.UserSession, error)
	CreateSecurityEvent(ctx context.Context, p domain.SecurityEventParams) (*domain.SecurityEvent, error)
}

// oauthVerifier defines the OAuth verification interface needed by the auth service.
type oauthVerifier interface {
	VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error)
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID string, role string) (string, error)
	ValidateAccessToken(token string) (string, string, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	store userStore
	oauth oauthVerifier
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance. oauth may be nil when
// Discord OAuth is not configured; LoginWithDiscord then fails with
// ErrUnauthorized.
func NewService(
	logger *slog.Logger,
	store userStore,
	oauth oauthVerifier,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		store: store,
		oauth: oauth,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// recordLogin stores the session fingerprint and a login security event.
// Failures are logged, never surfaced: a login must not fail because
// bookkeeping did.
func (s *Service) recordLogin(ctx context.Context, user *domain.User, meta RequestMeta, method string) {
	_, err := s.store.CreateUserSession(ctx, domain.UserSessionParams{
		UserID:    &user.ID,
		IPAddress: &meta.IPAddress,
		UserAgent: &meta.UserAgent,
	})
	if err != nil {
		s.log.WarnContext(ctx, "failed to record session", slog.String("error", err.Error()))
	}

	eventType := "login"
	description := "user logged in via " + method
	_, err = s.store.CreateSecurityEvent(ctx, domain.SecurityEventParams{
		EventType:   &eventType,
		Description: &description,
		UserID:      &user.ID,
		Severity:    ptr("low"),
		IPAddress:   &meta.IPAddress,
		UserAgent:   &meta.UserAgent,
	})
	if err != nil {
		s.log.WarnContext(ctx, "failed to record security event", slog.String("error", err.Error()))
	}
}

// RequestMeta carries per-request client details into login operations.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

func ptr[T any](v T) *T { return &v }
