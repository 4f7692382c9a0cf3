package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type collabStore interface {
	CreateCollaborationSpace(ctx context.Context, p domain.CollaborationSpaceParams) (*domain.CollaborationSpace, error)
	GetCollaborationSpace(ctx context.Context, id string) (*domain.CollaborationSpace, error)
	GetCollaborationSpaces(ctx context.Context, userID string) ([]*domain.CollaborationSpace, error)
	CreateCollaborationMember(ctx context.Context, p domain.CollaborationMemberParams) (*domain.CollaborationMember, error)
	CreateCollaborationTask(ctx context.Context, p domain.CollaborationTaskParams) (*domain.CollaborationTask, error)
	GetCollaborationTasks(ctx context.Context, spaceID string) ([]*domain.CollaborationTask, error)
	CreateCollaborationMessage(ctx context.Context, p domain.CollaborationMessageParams) (*domain.CollaborationMessage, error)
	GetCollaborationMessages(ctx context.Context, spaceID, taskID string) ([]*domain.CollaborationMessage, error)
}

// CollabHandler serves collaboration spaces, memberships, task boards
// and space chat.
type CollabHandler struct {
	log   *slog.Logger
	store collabStore
}

func NewCollabHandler(log *slog.Logger, store collabStore) *CollabHandler {
	return &CollabHandler{log: log, store: store}
}

// CreateSpace handles POST /api/collaboration-spaces. The owner
// defaults to the caller.
func (h *CollabHandler) CreateSpace(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.CollaborationSpaceParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Name == nil || *p.Name == "" {
		handleError(h.log, w, r, domain.NewValidationError("name", "required"))
		return
	}
	if p.OwnerID == nil {
		p.OwnerID = &callerID
	}

	sp, err := h.store.CreateCollaborationSpace(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sp)
}

// ListSpaces handles GET /api/collaboration-spaces. Returns the spaces
// the caller owns or is an active member of.
func (h *CollabHandler) ListSpaces(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sps, err := h.store.GetCollaborationSpaces(r.Context(), callerID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sps)
}

// GetSpace handles GET /api/collaboration-spaces/{id}.
func (h *CollabHandler) GetSpace(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sp, err := h.store.GetCollaborationSpace(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sp)
}

// CreateMember handles POST /api/collaboration-spaces/{id}/members.
// The joining user defaults to the caller; the space id comes from
// the path.
func (h *CollabHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.CollaborationMemberParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	spaceID := r.PathValue("id")
	p.SpaceID = &spaceID
	if p.UserID == nil {
		p.UserID = &callerID
	}

	m, err := h.store.CreateCollaborationMember(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

// CreateTask handles POST /api/collaboration-spaces/{id}/tasks. The
// creator defaults to the caller.
func (h *CollabHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.CollaborationTaskParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	spaceID := r.PathValue("id")
	p.SpaceID = &spaceID
	if p.Title == nil || *p.Title == "" {
		handleError(h.log, w, r, domain.NewValidationError("title", "required"))
		return
	}
	if p.CreatedBy == nil {
		p.CreatedBy = &callerID
	}

	t, err := h.store.CreateCollaborationTask(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, t)
}

// ListTasks handles GET /api/collaboration-spaces/{id}/tasks.
func (h *CollabHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ts, err := h.store.GetCollaborationTasks(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ts)
}

// CreateMessage handles POST /api/collaboration-spaces/{id}/messages.
// The sender defaults to the caller.
func (h *CollabHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.CollaborationMessageParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	spaceID := r.PathValue("id")
	p.SpaceID = &spaceID
	if p.Content == nil || *p.Content == "" {
		handleError(h.log, w, r, domain.NewValidationError("content", "required"))
		return
	}
	if p.SenderID == nil {
		p.SenderID = &callerID
	}

	m, err := h.store.CreateCollaborationMessage(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

// ListMessages handles GET /api/collaboration-spaces/{id}/messages with
// an optional taskId query parameter. Messages come back oldest first.
func (h *CollabHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ms, err := h.store.GetCollaborationMessages(r.Context(), r.PathValue("id"), r.URL.Query().Get("taskId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ms)
}
