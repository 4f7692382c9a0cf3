package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateStaffAssignment assigns a staff member to a case or contact message.
func (s *Store) CreateStaffAssignment(ctx context.Context, p domain.StaffAssignmentParams) (*domain.StaffAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := domain.StaffAssignment{
		ID:             newID(),
		StaffUserID:    strOr(p.StaffUserID, ""),
		AssignmentType: strOr(p.AssignmentType, ""),
		AssignedBy:     strOr(p.AssignedBy, "system"),
		CaseID:         p.CaseID,
		ContactID:      p.ContactID,
		Notes:          p.Notes,
		IsActive:       boolOr(p.IsActive, true),
		AssignedAt:     time.Now(),
		CompletedAt:    nil,
	}
	s.staffAssignments.put(a.ID, &a)

	out := a
	return &out, nil
}

// GetStaffAssignments returns all assignments in insertion order.
func (s *Store) GetStaffAssignments(ctx context.Context) ([]*domain.StaffAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.StaffAssignment, 0, s.staffAssignments.len())
	for _, a := range s.staffAssignments.all() {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

// UpdateStaffAssignment shallow-merges non-nil fields. Assignments carry
// no UpdatedAt timestamp.
func (s *Store) UpdateStaffAssignment(ctx context.Context, id string, p domain.StaffAssignmentParams) (*domain.StaffAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.staffAssignments.get(id)
	if !ok {
		return nil, fmt.Errorf("staff assignment %s: %w", id, domain.ErrNotFound)
	}

	if p.StaffUserID != nil {
		a.StaffUserID = *p.StaffUserID
	}
	if p.AssignmentType != nil {
		a.AssignmentType = *p.AssignmentType
	}
	if p.AssignedBy != nil {
		a.AssignedBy = *p.AssignedBy
	}
	if p.CaseID != nil {
		a.CaseID = p.CaseID
	}
	if p.ContactID != nil {
		a.ContactID = p.ContactID
	}
	if p.Notes != nil {
		a.Notes = p.Notes
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
	if p.CompletedAt != nil {
		a.CompletedAt = p.CompletedAt
	}

	out := *a
	return &out, nil
}

// CreateStaffPermission grants a named permission to a staff member.
func (s *Store) CreateStaffPermission(ctx context.Context, p domain.StaffPermissionParams) (*domain.StaffPermission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp := domain.StaffPermission{
		ID:         newID(),
		UserID:     strOr(p.UserID, ""),
		Permission: strOr(p.Permission, ""),
		GrantedBy:  strOr(p.GrantedBy, ""),
		ExpiresAt:  p.ExpiresAt,
		IsActive:   boolOr(p.IsActive, true),
		GrantedAt:  time.Now(),
	}
	s.staffPermissions.put(sp.ID, &sp)

	out := sp
	return &out, nil
}

// GetStaffPermissions lists permissions, optionally for a single user
// (empty userID returns all).
func (s *Store) GetStaffPermissions(ctx context.Context, userID string) ([]*domain.StaffPermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.StaffPermission
	for _, sp := range s.staffPermissions.all() {
		if userID != "" && sp.UserID != userID {
			continue
		}
		copied := *sp
		out = append(out, &copied)
	}
	return out, nil
}

// CreateStaffPerformance stores a performance snapshot.
func (s *Store) CreateStaffPerformance(ctx context.Context, p domain.StaffPerformanceParams) (*domain.StaffPerformance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	perf := domain.StaffPerformance{
		ID:                    newID(),
		StaffID:               strOr(p.StaffID, ""),
		Period:                strOr(p.Period, ""),
		CasesHandled:          intOr(p.CasesHandled, 0),
		CasesResolved:         intOr(p.CasesResolved, 0),
		AverageResolutionTime: p.AverageResolutionTime,
		QualityScore:          p.QualityScore,
		Commendations:         intOr(p.Commendations, 0),
		Warnings:              intOr(p.Warnings, 0),
		Notes:                 p.Notes,
		CreatedAt:             time.Now(),
	}
	s.staffPerformance.put(perf.ID, &perf)

	out := perf
	return &out, nil
}

// GetStaffPerformance lists performance snapshots, optionally for a single
// staff member (empty staffID returns all).
func (s *Store) GetStaffPerformance(ctx context.Context, staffID string) ([]*domain.StaffPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.StaffPerformance
	for _, perf := range s.staffPerformance.all() {
		if staffID != "" && perf.StaffID != staffID {
			continue
		}
		copied := *perf
		out = append(out, &copied)
	}
	return out, nil
}

// CreateTribunalProceeding schedules a tribunal hearing for a case.
// The baseline administrator chairs by default.
func (s *Store) CreateTribunalProceeding(ctx context.Context, p domain.TribunalProceedingParams) (*domain.TribunalProceeding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	tp := domain.TribunalProceeding{
		ID:             newID(),
		CaseID:         strOr(p.CaseID, ""),
		ProceedingType: strOr(p.ProceedingType, ""),
		ScheduledDate:  p.ScheduledDate,
		ActualDate:     p.ActualDate,
		Chairperson:    strOr(p.Chairperson, s.adminID),
		PanelMembers:   strs(p.PanelMembers),
		Outcome:        p.Outcome,
		DecisionReason: p.DecisionReason,
		NextSteps:      p.NextSteps,
		Documents:      strs(p.Documents),
		IsPublic:       boolOr(p.IsPublic, false),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.tribunalProceedings.put(tp.ID, &tp)

	out := tp
	return &out, nil
}

// GetTribunalProceedings returns all proceedings in insertion order.
func (s *Store) GetTribunalProceedings(ctx context.Context) ([]*domain.TribunalProceeding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.TribunalProceeding, 0, s.tribunalProceedings.len())
	for _, tp := range s.tribunalProceedings.all() {
		copied := *tp
		out = append(out, &copied)
	}
	return out, nil
}

// UpdateTribunalProceeding shallow-merges non-nil fields and refreshes
// UpdatedAt.
func (s *Store) UpdateTribunalProceeding(ctx context.Context, id string, p domain.TribunalProceedingParams) (*domain.TribunalProceeding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tp, ok := s.tribunalProceedings.get(id)
	if !ok {
		return nil, fmt.Errorf("tribunal proceeding %s: %w", id, domain.ErrNotFound)
	}

	if p.CaseID != nil {
		tp.CaseID = *p.CaseID
	}
	if p.ProceedingType != nil {
		tp.ProceedingType = *p.ProceedingType
	}
	if p.ScheduledDate != nil {
		tp.ScheduledDate = p.ScheduledDate
	}
	if p.ActualDate != nil {
		tp.ActualDate = p.ActualDate
	}
	if p.Chairperson != nil {
		tp.Chairperson = *p.Chairperson
	}
	if p.PanelMembers != nil {
		tp.PanelMembers = p.PanelMembers
	}
	if p.Outcome != nil {
		tp.Outcome = p.Outcome
	}
	if p.DecisionReason != nil {
		tp.DecisionReason = p.DecisionReason
	}
	if p.NextSteps != nil {
		tp.NextSteps = p.NextSteps
	}
	if p.Documents != nil {
		tp.Documents = p.Documents
	}
	if p.IsPublic != nil {
		tp.IsPublic = *p.IsPublic
	}
	tp.UpdatedAt = time.Now()

	out := *tp
	return &out, nil
}
