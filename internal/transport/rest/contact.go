package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type contactStore interface {
	CreateContactMessage(ctx context.Context, p domain.ContactMessageParams) (*domain.ContactMessage, error)
	GetContactMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	CreatePasswordResetRequest(ctx context.Context, p domain.PasswordResetRequestParams) (*domain.PasswordResetRequest, error)
	GetPasswordResetRequests(ctx context.Context) ([]*domain.PasswordResetRequest, error)
	UpdatePasswordResetRequest(ctx context.Context, id string, p domain.PasswordResetRequestParams) (*domain.PasswordResetRequest, error)
}

// ContactHandler serves the public contact form and the password reset
// request queue.
type ContactHandler struct {
	log   *slog.Logger
	store contactStore
}

func NewContactHandler(log *slog.Logger, store contactStore) *ContactHandler {
	return &ContactHandler{log: log, store: store}
}

// CreateMessage handles POST /api/contact. Unauthenticated on purpose:
// the contact form is the front door for people without accounts.
func (h *ContactHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var p domain.ContactMessageParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Email == nil || *p.Email == "" {
		handleError(h.log, w, r, domain.NewValidationError("email", "required"))
		return
	}
	if p.Message == nil || *p.Message == "" {
		handleError(h.log, w, r, domain.NewValidationError("message", "required"))
		return
	}

	msg, err := h.store.CreateContactMessage(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// ListMessages handles GET /api/contact. Staff only.
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msgs, err := h.store.GetContactMessages(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, msgs)
}

// CreatePasswordReset handles POST /api/password-resets. The requester
// defaults to the caller.
func (h *ContactHandler) CreatePasswordReset(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.PasswordResetRequestParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.UserID == nil {
		p.UserID = &callerID
	}

	req, err := h.store.CreatePasswordResetRequest(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

// ListPasswordResets handles GET /api/password-resets. Admin only.
func (h *ContactHandler) ListPasswordResets(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reqs, err := h.store.GetPasswordResetRequests(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reqs)
}

// UpdatePasswordReset handles PATCH /api/password-resets/{id}. Admins
// approve or reject requests; approvals stamp the approver.
func (h *ContactHandler) UpdatePasswordReset(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireAdmin(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.PasswordResetRequestParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Status != nil && *p.Status == "approved" && p.ApprovedBy == nil {
		p.ApprovedBy = &callerID
	}

	req, err := h.store.UpdatePasswordResetRequest(r.Context(), r.PathValue("id"), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, req)
}
