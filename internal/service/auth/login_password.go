package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// LoginWithPassword authenticates a user with username + password.
// Returns ErrUnauthorized if the account is missing, inactive, has no
// local credential, or the password is wrong.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput, meta RequestMeta) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.store.AuthenticateUser(ctx, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.recordFailedLogin(ctx, input.Username, meta)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.LoginWithPassword authenticate: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword generate token: %w", err)
	}

	s.recordLogin(ctx, user, meta, "password")

	s.log.InfoContext(ctx, "user logged in via password",
		slog.String("user_id", user.ID))

	return &AuthResult{AccessToken: accessToken, User: user}, nil
}

// recordFailedLogin emits a failed_login security event. Best effort.
func (s *Service) recordFailedLogin(ctx context.Context, username string, meta RequestMeta) {
	eventType := "failed_login"
	description := "failed password login for " + username
	_, err := s.store.CreateSecurityEvent(ctx, domain.SecurityEventParams{
		EventType:   &eventType,
		Description: &description,
		Severity:    ptr("medium"),
		IPAddress:   &meta.IPAddress,
		UserAgent:   &meta.UserAgent,
	})
	if err != nil {
		s.log.WarnContext(ctx, "failed to record security event", slog.String("error", err.Error()))
	}
}
