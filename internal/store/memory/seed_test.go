package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ownersalliance/trustportal/internal/domain"
)

func testSeedParams() SeedParams {
	return SeedParams{
		AdminUsername: "admin",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin-secret",
		StaffUsername: "staff",
		StaffEmail:    "staff@example.com",
		StaffPassword: "staff-secret",
		BcryptCost:    bcrypt.MinCost,
	}
}

func TestSeedBaseline(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedBaseline(ctx, testSeedParams()))

	admin, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, admin.Role)
	require.NotNil(t, admin.PasswordHash)

	// Password arrives in the clear and is hashed during seeding.
	authed, err := s.AuthenticateUser(ctx, "admin", "admin-secret")
	require.NoError(t, err)
	require.Equal(t, admin.ID, authed.ID)

	cats, err := s.GetAiToolCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cats)

	tools, err := s.GetAiTools(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, tools)

	utilCats, err := s.GetUtilityCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, utilCats)

	docs, err := s.GetUtilityDocuments(ctx, utilCats[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, docs)
	require.Equal(t, admin.ID, docs[0].AuthorID)
}

func TestSeededAdminIsDefaultChairperson(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedBaseline(ctx, testSeedParams()))
	admin, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)

	tp, err := s.CreateTribunalProceeding(ctx, domain.TribunalProceedingParams{
		CaseID: ptr("case-1"),
	})
	require.NoError(t, err)
	require.Equal(t, admin.ID, tp.Chairperson)
}

func TestEnsureDefaultAccountsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := testSeedParams()

	require.NoError(t, s.EnsureDefaultAccounts(ctx, p))
	require.NoError(t, s.EnsureDefaultAccounts(ctx, p))

	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	staff, err := s.GetUserByUsername(ctx, "staff")
	require.NoError(t, err)
	require.Equal(t, domain.RoleStaff, staff.Role)
}

func TestEnsureDefaultAccountsSkipsUnconfiguredStaff(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p := testSeedParams()
	p.StaffUsername = ""

	require.NoError(t, s.EnsureDefaultAccounts(ctx, p))

	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}
