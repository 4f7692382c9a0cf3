package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// defaultCaseLimit is the page size used when a listing omits limit.
const defaultCaseLimit = 50

// CreateCase stores a new case with a generated case number and defaults.
func (s *Store) CreateCase(ctx context.Context, p domain.CaseParams) (*domain.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c := domain.Case{
		ID:               newID(),
		CaseNumber:       fmt.Sprintf("CASE-%d", now.UnixMilli()),
		Title:            strOr(p.Title, ""),
		Description:      strOr(p.Description, ""),
		Type:             strOr(p.Type, ""),
		ReportedUserID:   strOr(p.ReportedUserID, "unknown"),
		ReporterUserID:   strOr(p.ReporterUserID, "unknown"),
		Status:           strOr(p.Status, domain.CaseStatusPending),
		Priority:         strOr(p.Priority, domain.PriorityMedium),
		StaffUserID:      p.StaffUserID,
		AmountInvolved:   p.AmountInvolved,
		Currency:         strOr(p.Currency, "USD"),
		Tags:             strs(p.Tags),
		Metadata:         p.Metadata,
		AiAnalysis:       p.AiAnalysis,
		AiRiskScore:      p.AiRiskScore,
		AiUrgencyLevel:   p.AiUrgencyLevel,
		ModerationAdvice: p.ModerationAdvice,
		CreatedAt:        now,
		UpdatedAt:        now,
		ResolvedAt:       nil,
	}

	s.cases.put(c.ID, &c)

	out := c
	return &out, nil
}

// GetCase returns a case by id.
func (s *Store) GetCase(ctx context.Context, id string) (*domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases.get(id)
	if !ok {
		return nil, fmt.Errorf("case %s: %w", id, domain.ErrNotFound)
	}
	out := *c
	return &out, nil
}

// GetCases lists cases matching every supplied predicate, in insertion
// order, paginated last.
func (s *Store) GetCases(ctx context.Context, f domain.CaseFilter) ([]*domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filterCases(f)
	page := paginate(filtered, f.Offset, f.Limit, defaultCaseLimit)

	out := make([]*domain.Case, 0, len(page))
	for _, c := range page {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

// CountCases returns the number of cases matching the filter predicates,
// ignoring pagination.
func (s *Store) CountCases(ctx context.Context, f domain.CaseFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.filterCases(f)), nil
}

// filterCases applies the AND of the supplied predicates. Callers hold s.mu.
func (s *Store) filterCases(f domain.CaseFilter) []*domain.Case {
	result := s.cases.all()

	if f.Status != nil {
		result = filterSlice(result, func(c *domain.Case) bool { return c.Status == *f.Status })
	}
	if f.Type != nil {
		result = filterSlice(result, func(c *domain.Case) bool { return c.Type == *f.Type })
	}
	if f.Search != nil {
		q := strings.ToLower(*f.Search)
		result = filterSlice(result, func(c *domain.Case) bool {
			return strings.Contains(strings.ToLower(c.Title), q) ||
				strings.Contains(strings.ToLower(c.Description), q)
		})
	}
	return result
}

// UpdateCase shallow-merges non-nil fields and refreshes UpdatedAt.
func (s *Store) UpdateCase(ctx context.Context, id string, p domain.CaseParams) (*domain.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases.get(id)
	if !ok {
		return nil, fmt.Errorf("case %s: %w", id, domain.ErrNotFound)
	}

	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.ReportedUserID != nil {
		c.ReportedUserID = *p.ReportedUserID
	}
	if p.ReporterUserID != nil {
		c.ReporterUserID = *p.ReporterUserID
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.StaffUserID != nil {
		c.StaffUserID = p.StaffUserID
	}
	if p.AmountInvolved != nil {
		c.AmountInvolved = p.AmountInvolved
	}
	if p.Currency != nil {
		c.Currency = *p.Currency
	}
	if p.Tags != nil {
		c.Tags = p.Tags
	}
	if p.Metadata != nil {
		c.Metadata = p.Metadata
	}
	if p.AiAnalysis != nil {
		c.AiAnalysis = p.AiAnalysis
	}
	if p.AiRiskScore != nil {
		c.AiRiskScore = p.AiRiskScore
	}
	if p.AiUrgencyLevel != nil {
		c.AiUrgencyLevel = p.AiUrgencyLevel
	}
	if p.ModerationAdvice != nil {
		c.ModerationAdvice = p.ModerationAdvice
	}
	if p.ResolvedAt != nil {
		c.ResolvedAt = p.ResolvedAt
	}
	c.UpdatedAt = time.Now()

	out := *c
	return &out, nil
}

// CreateEvidence attaches evidence to a case.
func (s *Store) CreateEvidence(ctx context.Context, p domain.EvidenceParams) (*domain.Evidence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := domain.Evidence{
		ID:          newID(),
		CaseID:      strOr(p.CaseID, ""),
		Type:        strOr(p.Type, ""),
		URL:         strOr(p.URL, ""),
		Description: p.Description,
		UploadedBy:  strOr(p.UploadedBy, ""),
		CreatedAt:   time.Now(),
	}
	s.evidence.put(e.ID, &e)

	out := e
	return &out, nil
}

// GetEvidenceByCase lists evidence attached to the given case.
func (s *Store) GetEvidenceByCase(ctx context.Context, caseID string) ([]*domain.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Evidence
	for _, e := range s.evidence.all() {
		if e.CaseID == caseID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateAppeal files an appeal against a case decision.
func (s *Store) CreateAppeal(ctx context.Context, p domain.AppealParams) (*domain.Appeal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := domain.Appeal{
		ID:          newID(),
		CaseID:      strOr(p.CaseID, ""),
		UserID:      strOr(p.UserID, ""),
		Reason:      strOr(p.Reason, ""),
		Status:      strOr(p.Status, domain.ReviewStatusPending),
		ReviewedBy:  p.ReviewedBy,
		ReviewNotes: p.ReviewNotes,
		CreatedAt:   time.Now(),
		ReviewedAt:  nil,
	}
	s.appeals.put(a.ID, &a)

	out := a
	return &out, nil
}

// GetAppealsByCase lists appeals filed against the given case.
func (s *Store) GetAppealsByCase(ctx context.Context, caseID string) ([]*domain.Appeal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Appeal
	for _, a := range s.appeals.all() {
		if a.CaseID == caseID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateCaseUpdate appends an entry to a case's change history.
func (s *Store) CreateCaseUpdate(ctx context.Context, p domain.CaseUpdateParams) (*domain.CaseUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := domain.CaseUpdate{
		ID:         newID(),
		CaseID:     strOr(p.CaseID, ""),
		UserID:     strOr(p.UserID, ""),
		UpdateType: strOr(p.UpdateType, ""),
		OldValue:   p.OldValue,
		NewValue:   p.NewValue,
		Comment:    p.Comment,
		CreatedAt:  time.Now(),
	}
	s.caseUpdates.put(u.ID, &u)

	out := u
	return &out, nil
}

// GetCaseUpdates lists the change history for the given case.
func (s *Store) GetCaseUpdates(ctx context.Context, caseID string) ([]*domain.CaseUpdate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.CaseUpdate
	for _, u := range s.caseUpdates.all() {
		if u.CaseID == caseID {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

// filterSlice keeps the elements satisfying pred, preserving order.
func filterSlice[T any](in []*T, pred func(*T) bool) []*T {
	out := in[:0:0]
	for _, v := range in {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// paginate slices the filtered sequence; offset past the end yields an
// empty page, and a zero limit falls back to the kind's default.
func paginate[T any](in []*T, offset, limit, defLimit int) []*T {
	if limit <= 0 {
		limit = defLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(in) {
		return nil
	}
	end := offset + limit
	if end > len(in) {
		end = len(in)
	}
	return in[offset:end]
}
