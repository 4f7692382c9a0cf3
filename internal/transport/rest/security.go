package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type securityStore interface {
	CreateUserSession(ctx context.Context, p domain.UserSessionParams) (*domain.UserSession, error)
	GetUserSessions(ctx context.Context) ([]*domain.UserSession, error)
	CreateSecurityEvent(ctx context.Context, p domain.SecurityEventParams) (*domain.SecurityEvent, error)
	GetSecurityEvents(ctx context.Context) ([]*domain.SecurityEvent, error)
	CreateAuditLog(ctx context.Context, p domain.AuditLogParams) (*domain.AuditLog, error)
	GetAuditLogs(ctx context.Context) ([]*domain.AuditLog, error)
	CreateVerificationRequest(ctx context.Context, p domain.VerificationRequestParams) (*domain.VerificationRequest, error)
	GetVerificationRequests(ctx context.Context) ([]*domain.VerificationRequest, error)
}

// SecurityHandler serves sessions, security events, audit logs and
// verification requests.
type SecurityHandler struct {
	log   *slog.Logger
	store securityStore
}

func NewSecurityHandler(log *slog.Logger, store securityStore) *SecurityHandler {
	return &SecurityHandler{log: log, store: store}
}

// CreateSession handles POST /api/sessions. Sessions carry the device
// fingerprint the frontend collects for alt detection; the session
// owner defaults to the caller.
func (h *SecurityHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.UserSessionParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.UserID == nil {
		p.UserID = &callerID
	}
	meta := requestMeta(r)
	if p.IPAddress == nil {
		p.IPAddress = &meta.IPAddress
	}
	if p.UserAgent == nil {
		p.UserAgent = &meta.UserAgent
	}

	s, err := h.store.CreateUserSession(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, s)
}

// ListSessions handles GET /api/sessions. Admin only.
func (h *SecurityHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ss, err := h.store.GetUserSessions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ss)
}

// CreateEvent handles POST /api/security-events. Staff only.
func (h *SecurityHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.SecurityEventParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.EventType == nil || *p.EventType == "" {
		handleError(h.log, w, r, domain.NewValidationError("eventType", "required"))
		return
	}
	meta := requestMeta(r)
	if p.IPAddress == nil {
		p.IPAddress = &meta.IPAddress
	}

	ev, err := h.store.CreateSecurityEvent(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ev)
}

// ListEvents handles GET /api/security-events. Admin only.
func (h *SecurityHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	evs, err := h.store.GetSecurityEvents(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, evs)
}

// CreateAuditLog handles POST /api/audit-logs. The actor defaults to
// the caller.
func (h *SecurityHandler) CreateAuditLog(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireStaff(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AuditLogParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Action == nil || *p.Action == "" {
		handleError(h.log, w, r, domain.NewValidationError("action", "required"))
		return
	}
	if p.UserID == nil {
		p.UserID = &callerID
	}

	entry, err := h.store.CreateAuditLog(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// ListAuditLogs handles GET /api/audit-logs. Admin only.
func (h *SecurityHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.store.GetAuditLogs(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// CreateVerificationRequest handles POST /api/verification-requests.
// Any authenticated user may request verification for themselves.
func (h *SecurityHandler) CreateVerificationRequest(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.VerificationRequestParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.UserID == nil {
		p.UserID = &callerID
	}

	req, err := h.store.CreateVerificationRequest(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

// ListVerificationRequests handles GET /api/verification-requests.
// Staff only.
func (h *SecurityHandler) ListVerificationRequests(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reqs, err := h.store.GetVerificationRequests(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reqs)
}
