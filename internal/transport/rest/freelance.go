package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type freelanceStore interface {
	CreateFreelancerProfile(ctx context.Context, p domain.FreelancerProfileParams) (*domain.FreelancerProfile, error)
	GetFreelancerProfile(ctx context.Context, userID string) (*domain.FreelancerProfile, error)
	GetFreelancerProfiles(ctx context.Context, f domain.FreelancerFilter) ([]*domain.FreelancerProfile, error)
	UpdateFreelancerProfile(ctx context.Context, userID string, p domain.FreelancerProfileParams) (*domain.FreelancerProfile, error)

	CreateProject(ctx context.Context, p domain.ProjectParams) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	GetProjects(ctx context.Context, f domain.ProjectFilter) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, id string, p domain.ProjectParams) (*domain.Project, error)
	CreateProjectApplication(ctx context.Context, p domain.ProjectApplicationParams) (*domain.ProjectApplication, error)
	GetProjectApplications(ctx context.Context, projectID string) ([]*domain.ProjectApplication, error)
	CreateProjectReview(ctx context.Context, p domain.ProjectReviewParams) (*domain.ProjectReview, error)
}

// FreelanceHandler serves the marketplace: freelancer profiles,
// projects, applications and reviews.
type FreelanceHandler struct {
	log   *slog.Logger
	store freelanceStore
}

func NewFreelanceHandler(log *slog.Logger, store freelanceStore) *FreelanceHandler {
	return &FreelanceHandler{log: log, store: store}
}

// CreateProfile handles POST /api/freelancer-profiles. One profile per
// user; the owner defaults to the caller.
func (h *FreelanceHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.FreelancerProfileParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.UserID == nil {
		p.UserID = &callerID
	}
	if p.Title == nil || *p.Title == "" {
		handleError(h.log, w, r, domain.NewValidationError("title", "required"))
		return
	}

	prof, err := h.store.CreateFreelancerProfile(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, prof)
}

// ListProfiles handles GET /api/freelancer-profiles with optional
// skills (comma-separated) and verified query parameters.
func (h *FreelanceHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	profs, err := h.store.GetFreelancerProfiles(r.Context(), domain.FreelancerFilter{
		Skills:   queryList(r, "skills"),
		Verified: queryBool(r, "verified"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profs)
}

// GetProfile handles GET /api/freelancer-profiles/{userId}. Profiles
// are keyed by their owning user.
func (h *FreelanceHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	prof, err := h.store.GetFreelancerProfile(r.Context(), r.PathValue("userId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

// UpdateProfile handles PATCH /api/freelancer-profiles/{userId}. Only
// the owner or staff may edit a profile.
func (h *FreelanceHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	userID := r.PathValue("userId")
	if userID != callerID {
		if _, err := middleware.RequireStaff(r.Context()); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	var p domain.FreelancerProfileParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	prof, err := h.store.UpdateFreelancerProfile(r.Context(), userID, p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

// CreateProject handles POST /api/projects. The client defaults to
// the caller.
func (h *FreelanceHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.ProjectParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Title == nil || *p.Title == "" {
		handleError(h.log, w, r, domain.NewValidationError("title", "required"))
		return
	}
	if p.ClientID == nil {
		p.ClientID = &callerID
	}

	proj, err := h.store.CreateProject(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, proj)
}

// ListProjects handles GET /api/projects with optional status, skills
// and clientId query parameters.
func (h *FreelanceHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	projs, err := h.store.GetProjects(r.Context(), domain.ProjectFilter{
		Status:   queryString(r, "status"),
		Skills:   queryList(r, "skills"),
		ClientID: queryString(r, "clientId"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, projs)
}

// GetProject handles GET /api/projects/{id}.
func (h *FreelanceHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	proj, err := h.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, proj)
}

// UpdateProject handles PATCH /api/projects/{id}. Only the posting
// client or staff may edit.
func (h *FreelanceHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id := r.PathValue("id")
	proj, err := h.store.GetProject(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if proj.ClientID != callerID {
		if _, err := middleware.RequireStaff(r.Context()); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	var p domain.ProjectParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	proj, err = h.store.UpdateProject(r.Context(), id, p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, proj)
}

// CreateApplication handles POST /api/projects/{id}/applications. The
// applicant defaults to the caller; the project id comes from the path.
func (h *FreelanceHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.ProjectApplicationParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	projectID := r.PathValue("id")
	p.ProjectID = &projectID
	if p.FreelancerID == nil {
		p.FreelancerID = &callerID
	}

	app, err := h.store.CreateProjectApplication(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, app)
}

// ListApplications handles GET /api/projects/{id}/applications.
func (h *FreelanceHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	apps, err := h.store.GetProjectApplications(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}

// CreateReview handles POST /api/projects/{id}/reviews. The reviewer
// defaults to the caller.
func (h *FreelanceHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.ProjectReviewParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	projectID := r.PathValue("id")
	p.ProjectID = &projectID
	if p.RevieweeID == nil || *p.RevieweeID == "" {
		handleError(h.log, w, r, domain.NewValidationError("revieweeId", "required"))
		return
	}
	if p.Rating == nil {
		handleError(h.log, w, r, domain.NewValidationError("rating", "required"))
		return
	}
	if *p.Rating < 1 || *p.Rating > 5 {
		handleError(h.log, w, r, domain.NewValidationError("rating", "must be between 1 and 5"))
		return
	}
	if p.ReviewerID == nil {
		p.ReviewerID = &callerID
	}

	rev, err := h.store.CreateProjectReview(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rev)
}
