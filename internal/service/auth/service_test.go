package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ownersalliance/trustportal/internal/auth"
	"github.com/ownersalliance/trustportal/internal/config"
	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/store/memory"
)

type fakeVerifier struct {
	identity *auth.OAuthIdentity
	err      error
}

func (f *fakeVerifier) VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error) {
	return f.identity, f.err
}

func newTestService(t *testing.T, oauth oauthVerifier) (*Service, *memory.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(logger)
	jwt := auth.NewJWTManager("0123456789abcdef0123456789abcdef", "trustportal", time.Hour)
	svc := NewService(logger, store, oauth, jwt, config.AuthConfig{BcryptCost: bcrypt.MinCost})
	return svc, store
}

func createPasswordUser(t *testing.T, store *memory.Store, username, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)
	u, err := store.CreateUser(context.Background(), domain.UserParams{
		Username:     &username,
		Email:        ptr(username + "@example.com"),
		PasswordHash: &hashed,
	})
	require.NoError(t, err)
	return u
}

func TestLoginWithPassword(t *testing.T) {
	svc, store := newTestService(t, nil)
	ctx := context.Background()
	user := createPasswordUser(t, store, "alice", "secret123")

	result, err := svc.LoginWithPassword(ctx, LoginPasswordInput{
		Username: " alice ",
		Password: "secret123",
	}, RequestMeta{IPAddress: "10.0.0.1", UserAgent: "test"})
	require.NoError(t, err)
	require.Equal(t, user.ID, result.User.ID)
	require.NotEmpty(t, result.AccessToken)

	// Login bookkeeping: one session and one login event.
	sessions, err := store.GetUserSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, user.ID, sessions[0].UserID)
	require.Equal(t, "10.0.0.1", sessions[0].IPAddress)

	events, err := store.GetSecurityEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "login", events[0].EventType)
}

func TestLoginWithPasswordWrongPassword(t *testing.T) {
	svc, store := newTestService(t, nil)
	ctx := context.Background()
	createPasswordUser(t, store, "alice", "secret123")

	_, err := svc.LoginWithPassword(ctx, LoginPasswordInput{
		Username: "alice",
		Password: "wrong",
	}, RequestMeta{})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	events, err := store.GetSecurityEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "failed_login", events[0].EventType)
	require.Equal(t, "medium", events[0].Severity)
}

func TestLoginWithPasswordValidation(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.LoginWithPassword(context.Background(), LoginPasswordInput{}, RequestMeta{})
	require.ErrorIs(t, err, domain.ErrValidation)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Errors, 2)
}

func TestLoginWithDiscordNotConfigured(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.LoginWithDiscord(context.Background(), LoginDiscordInput{Code: "code"}, RequestMeta{})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginWithDiscordBadCode(t *testing.T) {
	svc, _ := newTestService(t, &fakeVerifier{err: errors.New("exchange failed")})

	_, err := svc.LoginWithDiscord(context.Background(), LoginDiscordInput{Code: "bad"}, RequestMeta{})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginWithDiscordCreatesAccount(t *testing.T) {
	verifier := &fakeVerifier{identity: &auth.OAuthIdentity{
		ProviderID: "111222333",
		Username:   "gamer",
	}}
	svc, store := newTestService(t, verifier)
	ctx := context.Background()

	result, err := svc.LoginWithDiscord(ctx, LoginDiscordInput{Code: "code"}, RequestMeta{})
	require.NoError(t, err)
	// The portal username carries a random suffix; the raw Discord name
	// lives in the discord profile fields.
	require.Regexp(t, `^gamer_[0-9a-f]{6}$`, result.User.Username)
	require.NotNil(t, result.User.DiscordUsername)
	require.Equal(t, "gamer", *result.User.DiscordUsername)
	// Discord returned no email, so the synthetic placeholder is used.
	require.Equal(t, "111222333@discord.local", result.User.Email)
	require.Nil(t, result.User.PasswordHash)

	stored, err := store.GetUserByDiscordID(ctx, "111222333")
	require.NoError(t, err)
	require.Equal(t, result.User.ID, stored.ID)
}

func TestLoginWithDiscordLinksByEmail(t *testing.T) {
	email := "alice@example.com"
	verifier := &fakeVerifier{identity: &auth.OAuthIdentity{
		ProviderID: "111222333",
		Username:   "gamer",
		Email:      &email,
	}}
	svc, store := newTestService(t, verifier)
	ctx := context.Background()
	existing := createPasswordUser(t, store, "alice", "secret123")

	result, err := svc.LoginWithDiscord(ctx, LoginDiscordInput{Code: "code"}, RequestMeta{})
	require.NoError(t, err)
	// Same email means the identity attaches to the existing account
	// instead of minting a second one.
	require.Equal(t, existing.ID, result.User.ID)
	require.NotNil(t, result.User.DiscordID)
	require.Equal(t, "111222333", *result.User.DiscordID)

	users, err := store.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	// The local password stays valid after linking.
	_, err = svc.LoginWithPassword(ctx, LoginPasswordInput{
		Username: "alice",
		Password: "secret123",
	}, RequestMeta{})
	require.NoError(t, err)
}

func TestLoginWithDiscordUsernameCollision(t *testing.T) {
	verifier := &fakeVerifier{identity: &auth.OAuthIdentity{
		ProviderID: "111222333",
		Username:   "gamer",
	}}
	svc, store := newTestService(t, verifier)
	ctx := context.Background()
	createPasswordUser(t, store, "gamer", "secret123")

	result, err := svc.LoginWithDiscord(ctx, LoginDiscordInput{Code: "code"}, RequestMeta{})
	require.NoError(t, err)
	require.NotEqual(t, "gamer", result.User.Username)

	// The password account is untouched and still resolves by username.
	byName, err := store.GetUserByUsername(ctx, "gamer")
	require.NoError(t, err)
	require.NotEqual(t, result.User.ID, byName.ID)
}

func TestLoginWithDiscordRefreshesProfile(t *testing.T) {
	verifier := &fakeVerifier{identity: &auth.OAuthIdentity{
		ProviderID: "111222333",
		Username:   "gamer",
	}}
	svc, _ := newTestService(t, verifier)
	ctx := context.Background()

	first, err := svc.LoginWithDiscord(ctx, LoginDiscordInput{Code: "code"}, RequestMeta{})
	require.NoError(t, err)

	verifier.identity = &auth.OAuthIdentity{
		ProviderID: "111222333",
		Username:   "renamed",
	}
	second, err := svc.LoginWithDiscord(ctx, LoginDiscordInput{Code: "code"}, RequestMeta{})
	require.NoError(t, err)
	require.Equal(t, first.User.ID, second.User.ID)
	require.NotNil(t, second.User.DiscordUsername)
	require.Equal(t, "renamed", *second.User.DiscordUsername)
}

func TestLoginWithDiscordInactiveAccount(t *testing.T) {
	verifier := &fakeVerifier{identity: &auth.OAuthIdentity{
		ProviderID: "111222333",
		Username:   "gamer",
	}}
	svc, store := newTestService(t, verifier)
	ctx := context.Background()

	first, err := svc.LoginWithDiscord(ctx, LoginDiscordInput{Code: "code"}, RequestMeta{})
	require.NoError(t, err)

	_, err = store.UpdateUser(ctx, first.User.ID, domain.UserParams{IsActive: ptr(false)})
	require.NoError(t, err)

	_, err = svc.LoginWithDiscord(ctx, LoginDiscordInput{Code: "code"}, RequestMeta{})
	require.ErrorIs(t, err, domain.ErrForbidden)
}
