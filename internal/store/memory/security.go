package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateUserSession records a device session with its fingerprint data.
func (s *Store) CreateUserSession(ctx context.Context, p domain.UserSessionParams) (*domain.UserSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sess := domain.UserSession{
		ID:                  newID(),
		UserID:              strOr(p.UserID, ""),
		IPAddress:           strOr(p.IPAddress, ""),
		UserAgent:           strOr(p.UserAgent, ""),
		DeviceFingerprint:   p.DeviceFingerprint,
		IsActive:            boolOr(p.IsActive, true),
		LastActivity:        timeOr(p.LastActivity, now),
		ScreenResolution:    p.ScreenResolution,
		Timezone:            p.Timezone,
		Language:            p.Language,
		Platform:            p.Platform,
		BrowserVersion:      p.BrowserVersion,
		Plugins:             strs(p.Plugins),
		Fonts:               strs(p.Fonts),
		HardwareConcurrency: p.HardwareConcurrency,
		DeviceMemory:        p.DeviceMemory,
		ConnectionType:      p.ConnectionType,
		SuspiciousActivity:  boolOr(p.SuspiciousActivity, false),
		RiskScore:           intOr(p.RiskScore, 0),
		CreatedAt:           now,
	}
	s.sessions.put(sess.ID, &sess)

	out := sess
	return &out, nil
}

// GetUserSessions returns every session, most recently active first.
func (s *Store) GetUserSessions(ctx context.Context) ([]*domain.UserSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.UserSession, 0, s.sessions.len())
	for _, sess := range s.sessions.all() {
		copied := *sess
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out, nil
}

// CreateSecurityEvent records a notable security occurrence.
func (s *Store) CreateSecurityEvent(ctx context.Context, p domain.SecurityEventParams) (*domain.SecurityEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := domain.SecurityEvent{
		ID:          newID(),
		EventType:   strOr(p.EventType, ""),
		Description: strOr(p.Description, ""),
		UserID:      p.UserID,
		Severity:    strOr(p.Severity, domain.PriorityMedium),
		IPAddress:   strOr(p.IPAddress, ""),
		UserAgent:   p.UserAgent,
		Resolved:    boolOr(p.Resolved, false),
		ResolvedBy:  p.ResolvedBy,
		ResolvedAt:  p.ResolvedAt,
		CreatedAt:   time.Now(),
	}
	s.securityEvents.put(e.ID, &e)

	out := e
	return &out, nil
}

// GetSecurityEvents returns every event, newest first.
func (s *Store) GetSecurityEvents(ctx context.Context) ([]*domain.SecurityEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.SecurityEvent, 0, s.securityEvents.len())
	for _, e := range s.securityEvents.all() {
		copied := *e
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// CreateAuditLog appends an immutable audit entry.
func (s *Store) CreateAuditLog(ctx context.Context, p domain.AuditLogParams) (*domain.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := domain.AuditLog{
		ID:             newID(),
		UserID:         strOr(p.UserID, ""),
		Action:         strOr(p.Action, ""),
		EntityType:     strOr(p.EntityType, ""),
		EntityID:       p.EntityID,
		OldValues:      p.OldValues,
		NewValues:      p.NewValues,
		IPAddress:      p.IPAddress,
		UserAgent:      p.UserAgent,
		AdditionalData: p.AdditionalData,
		CreatedAt:      time.Now(),
	}
	s.auditLogs.put(l.ID, &l)

	out := l
	return &out, nil
}

// GetAuditLogs returns the audit trail, newest first.
func (s *Store) GetAuditLogs(ctx context.Context) ([]*domain.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.AuditLog, 0, s.auditLogs.len())
	for _, l := range s.auditLogs.all() {
		copied := *l
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// CreateVerificationRequest files an identity verification request.
func (s *Store) CreateVerificationRequest(ctx context.Context, p domain.VerificationRequestParams) (*domain.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.VerificationRequest{
		ID:               newID(),
		UserID:           strOr(p.UserID, ""),
		VerificationType: strOr(p.VerificationType, ""),
		Evidence:         p.Evidence,
		Status:           strOr(p.Status, domain.ReviewStatusPending),
		ReviewedBy:       p.ReviewedBy,
		ReviewNotes:      p.ReviewNotes,
		ExpiresAt:        p.ExpiresAt,
		CreatedAt:        time.Now(),
		ReviewedAt:       nil,
	}
	s.verificationRequests.put(r.ID, &r)

	out := r
	return &out, nil
}

// GetVerificationRequests returns all requests in insertion order.
func (s *Store) GetVerificationRequests(ctx context.Context) ([]*domain.VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.VerificationRequest, 0, s.verificationRequests.len())
	for _, r := range s.verificationRequests.all() {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}
