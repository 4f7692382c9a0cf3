package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ownersalliance/trustportal/internal/auth"
	"github.com/ownersalliance/trustportal/internal/domain"
)

// LoginWithDiscord exchanges a Discord OAuth authorization code for a
// portal session, creating the account on first login and refreshing
// the stored Discord profile on subsequent ones.
func (s *Service) LoginWithDiscord(ctx context.Context, input LoginDiscordInput, meta RequestMeta) (*AuthResult, error) {
	if s.oauth == nil {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.oauth.VerifyCode(ctx, input.Code)
	if err != nil {
		s.log.WarnContext(ctx, "discord code verification failed", slog.String("error", err.Error()))
		return nil, domain.ErrUnauthorized
	}

	user, err := s.store.GetUserByDiscordID(ctx, identity.ProviderID)
	switch {
	case err == nil:
		user, err = s.refreshDiscordProfile(ctx, user, identity)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrNotFound):
		user, err = s.federateDiscordUser(ctx, identity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("auth.LoginWithDiscord lookup: %w", err)
	}

	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithDiscord generate token: %w", err)
	}

	s.recordLogin(ctx, user, meta, "discord")

	s.log.InfoContext(ctx, "user logged in via discord",
		slog.String("user_id", user.ID),
		slog.String("discord_id", identity.ProviderID))

	return &AuthResult{AccessToken: accessToken, User: user}, nil
}

// federateDiscordUser resolves a first-time Discord identity: an existing
// account with the same email gets the identity linked to it, otherwise a
// fresh account is provisioned.
func (s *Service) federateDiscordUser(ctx context.Context, identity *auth.OAuthIdentity) (*domain.User, error) {
	if identity.Email != nil && *identity.Email != "" {
		existing, err := s.store.GetUserByEmail(ctx, *identity.Email)
		switch {
		case err == nil:
			return s.linkDiscordUser(ctx, existing, identity)
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, fmt.Errorf("auth.LoginWithDiscord email lookup: %w", err)
		}
	}
	return s.createDiscordUser(ctx, identity)
}

// linkDiscordUser attaches the Discord identity to an account that was
// registered with the same email. The local password, if any, stays valid.
func (s *Service) linkDiscordUser(ctx context.Context, user *domain.User, identity *auth.OAuthIdentity) (*domain.User, error) {
	linked, err := s.store.UpdateUser(ctx, user.ID, domain.UserParams{
		DiscordID:            &identity.ProviderID,
		DiscordUsername:      &identity.Username,
		DiscordDiscriminator: identity.Discriminator,
		DiscordAvatar:        identity.AvatarURL(),
		ProfileImageURL:      identity.AvatarURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithDiscord link account: %w", err)
	}

	s.log.InfoContext(ctx, "linked discord identity to existing account",
		slog.String("user_id", linked.ID),
		slog.String("discord_id", identity.ProviderID))

	return linked, nil
}

// createDiscordUser provisions a portal account from a Discord identity.
// The account has no local password; only Discord login works for it.
// The portal username gets a random suffix so a Discord name that matches
// an existing portal username cannot collide.
func (s *Service) createDiscordUser(ctx context.Context, identity *auth.OAuthIdentity) (*domain.User, error) {
	email := identity.ProviderID + "@discord.local"
	if identity.Email != nil && *identity.Email != "" {
		email = *identity.Email
	}
	username := identity.Username + "_" + randomSuffix()

	user, err := s.store.CreateUser(ctx, domain.UserParams{
		Username:             &username,
		Email:                &email,
		DiscordID:            &identity.ProviderID,
		DiscordUsername:      &identity.Username,
		DiscordDiscriminator: identity.Discriminator,
		DiscordAvatar:        identity.AvatarURL(),
		ProfileImageURL:      identity.AvatarURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithDiscord create user: %w", err)
	}
	return user, nil
}

func randomSuffix() string {
	b := make([]byte, 3)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// refreshDiscordProfile syncs the stored Discord username and avatar
// with the identity the provider just returned.
func (s *Service) refreshDiscordProfile(ctx context.Context, user *domain.User, identity *auth.OAuthIdentity) (*domain.User, error) {
	p := domain.UserParams{}
	changed := false

	if user.DiscordUsername == nil || *user.DiscordUsername != identity.Username {
		p.DiscordUsername = &identity.Username
		changed = true
	}
	if avatar := identity.AvatarURL(); avatar != nil &&
		(user.DiscordAvatar == nil || *user.DiscordAvatar != *avatar) {
		p.DiscordAvatar = avatar
		changed = true
	}
	if !changed {
		return user, nil
	}

	updated, err := s.store.UpdateUser(ctx, user.ID, p)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithDiscord refresh profile: %w", err)
	}
	return updated, nil
}
