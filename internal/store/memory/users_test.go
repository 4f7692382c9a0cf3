package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ownersalliance/trustportal/internal/domain"
)

func hashPassword(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return ptr(string(hash))
}

func TestCreateUserDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, domain.UserParams{
		Username: ptr("alice"),
		Email:    ptr("alice@example.com"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, domain.RoleUser, u.Role)
	require.True(t, u.IsActive)
	require.NotNil(t, u.Certifications)
	require.Empty(t, u.Certifications)
	require.False(t, u.CreatedAt.IsZero())
	require.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateUserMergesOnlyProvidedFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, domain.UserParams{
		Username:  ptr("alice"),
		Email:     ptr("alice@example.com"),
		FirstName: ptr("Alice"),
	})
	require.NoError(t, err)

	updated, err := s.UpdateUser(ctx, u.ID, domain.UserParams{
		LastName: ptr("Smith"),
	})
	require.NoError(t, err)
	require.Equal(t, "alice", updated.Username)
	require.NotNil(t, updated.FirstName)
	require.Equal(t, "Alice", *updated.FirstName)
	require.NotNil(t, updated.LastName)
	require.Equal(t, "Smith", *updated.LastName)

	// Empty patch touches nothing but the timestamp.
	again, err := s.UpdateUser(ctx, u.ID, domain.UserParams{})
	require.NoError(t, err)
	require.Equal(t, updated.Username, again.Username)
	require.Equal(t, updated.Email, again.Email)
}

func TestUserLookups(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, domain.UserParams{
		Username:  ptr("alice"),
		Email:     ptr("alice@example.com"),
		DiscordID: ptr("111222333"),
	})
	require.NoError(t, err)

	byName, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, created.ID, byName.ID)

	byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byDiscord, err := s.GetUserByDiscordID(ctx, "111222333")
	require.NoError(t, err)
	require.Equal(t, created.ID, byDiscord.ID)

	_, err = s.GetUserByDiscordID(ctx, "999")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthenticateUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, domain.UserParams{
		Username:     ptr("alice"),
		Email:        ptr("alice@example.com"),
		PasswordHash: hashPassword(t, "secret123"),
	})
	require.NoError(t, err)

	u, err := s.AuthenticateUser(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, created.ID, u.ID)

	_, err = s.AuthenticateUser(ctx, "alice", "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = s.AuthenticateUser(ctx, "nobody", "secret123")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticateUserFederatedAccount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.UserParams{
		Username:  ptr("discord_user"),
		Email:     ptr("d@example.com"),
		DiscordID: ptr("42"),
	})
	require.NoError(t, err)

	// No local credential, password login must always fail.
	_, err = s.AuthenticateUser(ctx, "discord_user", "")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticateUserInactive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.UserParams{
		Username:     ptr("banned"),
		Email:        ptr("b@example.com"),
		PasswordHash: hashPassword(t, "secret123"),
		IsActive:     ptr(false),
	})
	require.NoError(t, err)

	_, err = s.AuthenticateUser(ctx, "banned", "secret123")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetStaffMembers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.UserParams{
		Username: ptr("regular"), Email: ptr("r@example.com"),
	})
	require.NoError(t, err)
	staff, err := s.CreateUser(ctx, domain.UserParams{
		Username: ptr("mod"), Email: ptr("m@example.com"),
		Role: ptr(domain.RoleStaff),
	})
	require.NoError(t, err)
	admin, err := s.CreateUser(ctx, domain.UserParams{
		Username: ptr("root"), Email: ptr("a@example.com"),
		Role: ptr(domain.RoleAdmin),
	})
	require.NoError(t, err)

	got, err := s.GetStaffMembers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.ElementsMatch(t,
		[]string{staff.ID, admin.ID},
		[]string{got[0].ID, got[1].ID},
	)
}

func TestReturnedUsersAreCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, domain.UserParams{
		Username: ptr("alice"), Email: ptr("alice@example.com"),
	})
	require.NoError(t, err)

	u.Username = "mutated"

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
}
