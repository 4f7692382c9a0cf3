package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateContactMessage stores an inbound contact-form message.
func (s *Store) CreateContactMessage(ctx context.Context, p domain.ContactMessageParams) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	m := domain.ContactMessage{
		ID:         newID(),
		Name:       strOr(p.Name, ""),
		Email:      strOr(p.Email, ""),
		Subject:    strOr(p.Subject, ""),
		Message:    strOr(p.Message, ""),
		Priority:   strOr(p.Priority, domain.PriorityMedium),
		Status:     strOr(p.Status, "new"),
		AssignedTo: p.AssignedTo,
		Tags:       strs(p.Tags),
		Metadata:   p.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
		ResolvedAt: nil,
	}
	s.contactMessages.put(m.ID, &m)

	out := m
	return &out, nil
}

// GetContactMessages returns all contact messages in insertion order.
func (s *Store) GetContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ContactMessage, 0, s.contactMessages.len())
	for _, m := range s.contactMessages.all() {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

// CreatePasswordResetRequest stores a pending password reset request.
// Token and expiry stay empty until staff approval populates them.
func (s *Store) CreatePasswordResetRequest(ctx context.Context, p domain.PasswordResetRequestParams) (*domain.PasswordResetRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.PasswordResetRequest{
		ID:         newID(),
		UserID:     strOr(p.UserID, ""),
		Reason:     strOr(p.Reason, ""),
		Status:     strOr(p.Status, domain.ReviewStatusPending),
		ApprovedBy: p.ApprovedBy,
		Token:      nil,
		ExpiresAt:  nil,
		CreatedAt:  time.Now(),
		ApprovedAt: nil,
	}
	s.passwordResets.put(r.ID, &r)

	out := r
	return &out, nil
}

// GetPasswordResetRequests returns all reset requests in insertion order.
func (s *Store) GetPasswordResetRequests(ctx context.Context) ([]*domain.PasswordResetRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.PasswordResetRequest, 0, s.passwordResets.len())
	for _, r := range s.passwordResets.all() {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

// UpdatePasswordResetRequest shallow-merges non-nil fields. This kind has
// no UpdatedAt timestamp to refresh.
func (s *Store) UpdatePasswordResetRequest(ctx context.Context, id string, p domain.PasswordResetRequestParams) (*domain.PasswordResetRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.passwordResets.get(id)
	if !ok {
		return nil, fmt.Errorf("password reset request %s: %w", id, domain.ErrNotFound)
	}

	if p.UserID != nil {
		r.UserID = *p.UserID
	}
	if p.Reason != nil {
		r.Reason = *p.Reason
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.ApprovedBy != nil {
		r.ApprovedBy = p.ApprovedBy
	}
	if p.Token != nil {
		r.Token = p.Token
	}
	if p.ExpiresAt != nil {
		r.ExpiresAt = p.ExpiresAt
	}
	if p.ApprovedAt != nil {
		r.ApprovedAt = p.ApprovedAt
	}

	out := *r
	return &out, nil
}
