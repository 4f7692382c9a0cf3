package memory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ownersalliance/trustportal/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAltAccountsMatchEitherEndpoint(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateAltAccount(ctx, domain.AltAccountParams{
		PrimaryUserID: ptr("main"),
		AltUserID:     ptr("alt"),
	})
	require.NoError(t, err)
	_, err = s.CreateAltAccount(ctx, domain.AltAccountParams{
		PrimaryUserID: ptr("other"),
		AltUserID:     ptr("main"),
	})
	require.NoError(t, err)
	_, err = s.CreateAltAccount(ctx, domain.AltAccountParams{
		PrimaryUserID: ptr("a"),
		AltUserID:     ptr("b"),
	})
	require.NoError(t, err)

	got, err := s.GetAltAccounts(ctx, "main")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestAltDetectionReportDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rep, err := s.CreateAltDetectionReport(ctx, domain.AltDetectionReportParams{
		SuspectedAltUserID: ptr("suspect"),
		DetectionMethod:    ptr("fingerprint"),
	})
	require.NoError(t, err)
	require.Equal(t, "pending", rep.Status)
	require.Equal(t, "medium", rep.Severity)
	require.False(t, rep.AutoGenerated)
}

func TestUserReputationLookupByUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateUserReputation(ctx, domain.UserReputationParams{
		UserID: ptr("u1"),
	})
	require.NoError(t, err)
	require.Equal(t, 100, created.ReputationScore)
	require.Equal(t, "bronze", created.TrustLevel)

	got, err := s.GetUserReputation(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = s.GetUserReputation(ctx, "nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVouchDefaultsAndLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	v, err := s.CreateVouch(ctx, domain.VouchParams{
		VoucherUserID: ptr("alice"),
		TargetUserID:  ptr("bob"),
		Type:          ptr("vouch"),
		Reason:        ptr("trustworthy trader"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, v.Weight)
	require.False(t, v.IsAnonymous)

	vs, err := s.GetVouches(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, vs, 1)

	vs, err = s.GetVouches(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, vs)
}

func TestDisputeDefaultsAndActiveListing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d, err := s.CreateDisputeResolution(ctx, domain.DisputeResolutionParams{
		InitiatorUserID: ptr("alice"),
		Title:           ptr("refund disagreement"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.DisputeStatusActive, d.Status)
	require.True(t, d.IsPublic)
	require.Equal(t, 10, d.MinimumVotes)
	require.False(t, d.VotingStartDate.IsZero())

	_, err = s.CreateDisputeResolution(ctx, domain.DisputeResolutionParams{
		InitiatorUserID: ptr("bob"),
		Title:           ptr("settled dispute"),
		Status:          ptr(domain.DisputeStatusClosed),
	})
	require.NoError(t, err)

	active, err := s.GetActiveDisputes(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, d.ID, active[0].ID)
}

func TestAiToolUsageCompletionStamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.CreateAiToolUsage(ctx, domain.AiToolUsageParams{
		ToolID: ptr("tool-1"),
		UserID: ptr("u1"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.UsageStatusPending, u.Status)
	require.Nil(t, u.CompletedAt)

	u, err = s.UpdateAiToolUsage(ctx, u.ID, domain.AiToolUsageParams{
		Status: ptr(domain.UsageStatusRunning),
	})
	require.NoError(t, err)
	require.Nil(t, u.CompletedAt)

	u, err = s.UpdateAiToolUsage(ctx, u.ID, domain.AiToolUsageParams{
		Status: ptr(domain.UsageStatusCompleted),
	})
	require.NoError(t, err)
	require.NotNil(t, u.CompletedAt)
}

func TestGetAiToolsFiltersInactive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	active, err := s.CreateAiTool(ctx, domain.AiToolParams{
		CategoryID: ptr("cat-1"),
		Name:       ptr("summarizer"),
	})
	require.NoError(t, err)
	_, err = s.CreateAiTool(ctx, domain.AiToolParams{
		CategoryID: ptr("cat-1"),
		Name:       ptr("retired"),
		IsActive:   ptr(false),
	})
	require.NoError(t, err)

	tools, err := s.GetAiTools(ctx, "")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.Equal(t, active.ID, tools[0].ID)

	tools, err = s.GetAiTools(ctx, "cat-2")
	require.NoError(t, err)
	require.Empty(t, tools)
}

func TestCollaborationSpacesOwnerOrMember(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owned, err := s.CreateCollaborationSpace(ctx, domain.CollaborationSpaceParams{
		OwnerID: ptr("alice"),
		Name:    ptr("alice's space"),
	})
	require.NoError(t, err)
	require.Equal(t, 10, owned.MaxMembers)
	require.Equal(t, 1, owned.MemberCount)

	joined, err := s.CreateCollaborationSpace(ctx, domain.CollaborationSpaceParams{
		OwnerID: ptr("bob"),
		Name:    ptr("bob's space"),
	})
	require.NoError(t, err)
	_, err = s.CreateCollaborationMember(ctx, domain.CollaborationMemberParams{
		SpaceID: ptr(joined.ID),
		UserID:  ptr("alice"),
	})
	require.NoError(t, err)

	_, err = s.CreateCollaborationSpace(ctx, domain.CollaborationSpaceParams{
		OwnerID: ptr("carol"),
		Name:    ptr("unrelated"),
	})
	require.NoError(t, err)

	spaces, err := s.GetCollaborationSpaces(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, spaces, 2)
}

func TestCollaborationMessagesByTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateCollaborationMessage(ctx, domain.CollaborationMessageParams{
		SpaceID:  ptr("space-1"),
		SenderID: ptr("alice"),
		Content:  ptr("general chatter"),
	})
	require.NoError(t, err)
	tagged, err := s.CreateCollaborationMessage(ctx, domain.CollaborationMessageParams{
		SpaceID:  ptr("space-1"),
		SenderID: ptr("bob"),
		Content:  ptr("about the task"),
		TaskID:   ptr("task-1"),
	})
	require.NoError(t, err)
	require.Equal(t, "text", tagged.MessageType)

	all, err := s.GetCollaborationMessages(ctx, "space-1", "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	forTask, err := s.GetCollaborationMessages(ctx, "space-1", "task-1")
	require.NoError(t, err)
	require.Len(t, forTask, 1)
	require.Equal(t, tagged.ID, forTask[0].ID)
}

func TestDashboardStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.UserParams{Username: ptr("u1"), Email: ptr("u1@example.com")})
	require.NoError(t, err)

	_, err = s.CreateCase(ctx, domain.CaseParams{Title: ptr("pending case"), ReportedUserID: ptr("x")})
	require.NoError(t, err)
	_, err = s.CreateCase(ctx, domain.CaseParams{
		Title:          ptr("resolved case"),
		ReportedUserID: ptr("y"),
		Status:         ptr(domain.CaseStatusResolved),
	})
	require.NoError(t, err)

	_, err = s.CreateDisputeResolution(ctx, domain.DisputeResolutionParams{
		InitiatorUserID: ptr("u1"),
		Title:           ptr("dispute"),
		Status:          ptr(domain.DisputeStatusClosed),
	})
	require.NoError(t, err)

	_, err = s.CreateAltDetectionReport(ctx, domain.AltDetectionReportParams{
		SuspectedAltUserID: ptr("z"),
		DetectionMethod:    ptr("manual"),
	})
	require.NoError(t, err)

	stats, err := s.GetDashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalCases)
	require.Equal(t, 1, stats.TotalUsers)
	require.Equal(t, 1, stats.PendingCases)
	require.Equal(t, 1, stats.ResolvedCases)
	// Dispute counts are total, not status-filtered.
	require.Equal(t, 1, stats.ActiveDisputes)
	require.Equal(t, 1, stats.TotalReports)
}

func TestSecurityEventsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateSecurityEvent(ctx, domain.SecurityEventParams{
		EventType:   ptr("login"),
		Description: ptr("first"),
		IPAddress:   ptr("10.0.0.1"),
	})
	require.NoError(t, err)
	second, err := s.CreateSecurityEvent(ctx, domain.SecurityEventParams{
		EventType:   ptr("failed_login"),
		Description: ptr("second"),
		IPAddress:   ptr("10.0.0.2"),
	})
	require.NoError(t, err)

	events, err := s.GetSecurityEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.False(t, events[0].CreatedAt.Before(events[1].CreatedAt))
	require.ElementsMatch(t, []string{first.ID, second.ID}, []string{events[0].ID, events[1].ID})
}

func TestUtilityCategoriesSortedBySortOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUtilityCategory(ctx, domain.UtilityCategoryParams{
		Name:      ptr("later"),
		SortOrder: ptr(5),
	})
	require.NoError(t, err)
	_, err = s.CreateUtilityCategory(ctx, domain.UtilityCategoryParams{
		Name:      ptr("earlier"),
		SortOrder: ptr(1),
	})
	require.NoError(t, err)

	cats, err := s.GetUtilityCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	require.Equal(t, "earlier", cats[0].Name)
}

func TestFreelancerProfileKeyedByUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.CreateFreelancerProfile(ctx, domain.FreelancerProfileParams{
		UserID: ptr("alice"),
		Title:  ptr("Security auditor"),
		Bio:    ptr("ten years of fraud review"),
		Skills: []string{"audits"},
	})
	require.NoError(t, err)
	require.Equal(t, "basic", p.VerificationLevel)
	require.Equal(t, "USD", p.Currency)
	require.Equal(t, "available", p.Availability)
	require.Equal(t, "0", p.TotalEarnings)

	got, err := s.GetFreelancerProfile(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	updated, err := s.UpdateFreelancerProfile(ctx, "alice", domain.FreelancerProfileParams{
		Availability: ptr("busy"),
	})
	require.NoError(t, err)
	require.Equal(t, "busy", updated.Availability)
	require.Equal(t, "Security auditor", updated.Title)
}

func TestProjectFilterBySkills(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	match, err := s.CreateProject(ctx, domain.ProjectParams{
		ClientID: ptr("client"),
		Title:    ptr("audit gig"),
		Skills:   []string{"go", "audits"},
	})
	require.NoError(t, err)
	require.Equal(t, "fixed", match.BudgetType)
	require.Equal(t, "draft", match.Status)

	_, err = s.CreateProject(ctx, domain.ProjectParams{
		ClientID: ptr("client"),
		Title:    ptr("design gig"),
		Skills:   []string{"figma"},
	})
	require.NoError(t, err)

	got, err := s.GetProjects(ctx, domain.ProjectFilter{Skills: []string{"audits"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, match.ID, got[0].ID)
}
