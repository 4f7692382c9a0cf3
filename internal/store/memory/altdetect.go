package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateAltAccount records a primary/alt relation between two users.
func (s *Store) CreateAltAccount(ctx context.Context, p domain.AltAccountParams) (*domain.AltAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := domain.AltAccount{
		ID:            newID(),
		PrimaryUserID: strOr(p.PrimaryUserID, ""),
		AltUserID:     strOr(p.AltUserID, ""),
		Evidence:      p.Evidence,
		VerifiedBy:    p.VerifiedBy,
		IsActive:      boolOr(p.IsActive, true),
		CreatedAt:     time.Now(),
		VerifiedAt:    nil,
	}
	s.altAccounts.put(a.ID, &a)

	out := a
	return &out, nil
}

// GetAltAccounts lists relations touching the given user from either
// endpoint, primary or alt.
func (s *Store) GetAltAccounts(ctx context.Context, userID string) ([]*domain.AltAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.AltAccount
	for _, a := range s.altAccounts.all() {
		if a.PrimaryUserID == userID || a.AltUserID == userID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateAltDetectionReport files an alt-account detection report.
func (s *Store) CreateAltDetectionReport(ctx context.Context, p domain.AltDetectionReportParams) (*domain.AltDetectionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.AltDetectionReport{
		ID:                       newID(),
		SuspectedAltUserID:       strOr(p.SuspectedAltUserID, ""),
		DetectionMethod:          strOr(p.DetectionMethod, ""),
		MainAccountUserID:        p.MainAccountUserID,
		ReportedBy:               p.ReportedBy,
		Status:                   strOr(p.Status, domain.ReviewStatusPending),
		ReviewedBy:               p.ReviewedBy,
		ReviewNotes:              p.ReviewNotes,
		ActionTaken:              p.ActionTaken,
		Severity:                 strOr(p.Severity, domain.PriorityMedium),
		AutoGenerated:            boolOr(p.AutoGenerated, false),
		FalsePositiveProbability: p.FalsePositiveProbability,
		SimilarityMetrics:        p.SimilarityMetrics,
		CreatedAt:                time.Now(),
		ReviewedAt:               nil,
	}
	s.altReports.put(r.ID, &r)

	out := r
	return &out, nil
}

// GetAltDetectionReports returns all reports in insertion order.
func (s *Store) GetAltDetectionReports(ctx context.Context) ([]*domain.AltDetectionReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.AltDetectionReport, 0, s.altReports.len())
	for _, r := range s.altReports.all() {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

// UpdateAltDetectionReport shallow-merges non-nil fields. Reports carry
// no UpdatedAt timestamp.
func (s *Store) UpdateAltDetectionReport(ctx context.Context, id string, p domain.AltDetectionReportParams) (*domain.AltDetectionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.altReports.get(id)
	if !ok {
		return nil, fmt.Errorf("alt detection report %s: %w", id, domain.ErrNotFound)
	}

	if p.SuspectedAltUserID != nil {
		r.SuspectedAltUserID = *p.SuspectedAltUserID
	}
	if p.DetectionMethod != nil {
		r.DetectionMethod = *p.DetectionMethod
	}
	if p.MainAccountUserID != nil {
		r.MainAccountUserID = p.MainAccountUserID
	}
	if p.ReportedBy != nil {
		r.ReportedBy = p.ReportedBy
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.ReviewedBy != nil {
		r.ReviewedBy = p.ReviewedBy
	}
	if p.ReviewNotes != nil {
		r.ReviewNotes = p.ReviewNotes
	}
	if p.ActionTaken != nil {
		r.ActionTaken = p.ActionTaken
	}
	if p.Severity != nil {
		r.Severity = *p.Severity
	}
	if p.AutoGenerated != nil {
		r.AutoGenerated = *p.AutoGenerated
	}
	if p.FalsePositiveProbability != nil {
		r.FalsePositiveProbability = p.FalsePositiveProbability
	}
	if p.SimilarityMetrics != nil {
		r.SimilarityMetrics = p.SimilarityMetrics
	}
	if p.ReviewedAt != nil {
		r.ReviewedAt = p.ReviewedAt
	}

	out := *r
	return &out, nil
}
