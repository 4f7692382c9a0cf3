package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ownersalliance/trustportal/internal/domain"
)

func TestCreateCaseDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := s.CreateCase(ctx, domain.CaseParams{
		Title:          ptr("suspicious trade"),
		ReportedUserID: ptr("bob"),
		ReporterUserID: ptr("alice"),
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(c.CaseNumber, "CASE-"))
	require.Equal(t, domain.CaseStatusPending, c.Status)
	require.Equal(t, domain.PriorityMedium, c.Priority)
	require.Equal(t, "USD", c.Currency)
	require.NotNil(t, c.Tags)
	require.Nil(t, c.ResolvedAt)
}

func TestCreateCaseUnknownParties(t *testing.T) {
	s := newTestStore(t)

	c, err := s.CreateCase(context.Background(), domain.CaseParams{
		Title: ptr("anonymous report"),
	})
	require.NoError(t, err)
	require.Equal(t, "unknown", c.ReportedUserID)
	require.Equal(t, "unknown", c.ReporterUserID)
}

func TestGetCasesFiltering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateCase(ctx, domain.CaseParams{
		Title: ptr("chargeback scam"), Type: ptr("fraud"),
	})
	require.NoError(t, err)
	resolved, err := s.CreateCase(ctx, domain.CaseParams{
		Title:  ptr("impersonation"),
		Type:   ptr("impersonation"),
		Status: ptr(domain.CaseStatusResolved),
	})
	require.NoError(t, err)

	byStatus, err := s.GetCases(ctx, domain.CaseFilter{Status: ptr(domain.CaseStatusResolved)})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	require.Equal(t, resolved.ID, byStatus[0].ID)

	byType, err := s.GetCases(ctx, domain.CaseFilter{Type: ptr("fraud")})
	require.NoError(t, err)
	require.Len(t, byType, 1)

	// Search is case-insensitive over title and description.
	bySearch, err := s.GetCases(ctx, domain.CaseFilter{Search: ptr("CHARGEBACK")})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)

	none, err := s.GetCases(ctx, domain.CaseFilter{
		Status: ptr(domain.CaseStatusResolved),
		Type:   ptr("fraud"),
	})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestGetCasesPaginationAndCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.CreateCase(ctx, domain.CaseParams{Title: ptr("case")})
		require.NoError(t, err)
	}

	page, err := s.GetCases(ctx, domain.CaseFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)

	tail, err := s.GetCases(ctx, domain.CaseFilter{Limit: 10, Offset: 4})
	require.NoError(t, err)
	require.Len(t, tail, 1)

	past, err := s.GetCases(ctx, domain.CaseFilter{Offset: 99})
	require.NoError(t, err)
	require.Empty(t, past)

	total, err := s.CountCases(ctx, domain.CaseFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Equal(t, 5, total)
}

func TestUpdateCase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := s.CreateCase(ctx, domain.CaseParams{Title: ptr("open case")})
	require.NoError(t, err)

	resolvedAt := time.Now()
	updated, err := s.UpdateCase(ctx, c.ID, domain.CaseParams{
		Status:     ptr(domain.CaseStatusResolved),
		ResolvedAt: &resolvedAt,
	})
	require.NoError(t, err)
	require.Equal(t, domain.CaseStatusResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)
	require.Equal(t, "open case", updated.Title)

	_, err = s.UpdateCase(ctx, "missing", domain.CaseParams{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEvidenceByCase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ev, err := s.CreateEvidence(ctx, domain.EvidenceParams{
		CaseID:     ptr("case-1"),
		Type:       ptr("screenshot"),
		URL:        ptr("https://cdn.example.com/1.png"),
		UploadedBy: ptr("alice"),
	})
	require.NoError(t, err)
	_, err = s.CreateEvidence(ctx, domain.EvidenceParams{
		CaseID:     ptr("case-2"),
		URL:        ptr("https://cdn.example.com/2.png"),
		UploadedBy: ptr("bob"),
	})
	require.NoError(t, err)

	got, err := s.GetEvidenceByCase(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, ev.ID, got[0].ID)
}

func TestAppealsAndUpdatesByCase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ap, err := s.CreateAppeal(ctx, domain.AppealParams{
		CaseID: ptr("case-1"),
		UserID: ptr("bob"),
		Reason: ptr("decision was wrong"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.ReviewStatusPending, ap.Status)

	aps, err := s.GetAppealsByCase(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, aps, 1)

	_, err = s.CreateCaseUpdate(ctx, domain.CaseUpdateParams{
		CaseID:     ptr("case-1"),
		UserID:     ptr("staff-1"),
		UpdateType: ptr("status_change"),
	})
	require.NoError(t, err)

	upds, err := s.GetCaseUpdates(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, upds, 1)
}
