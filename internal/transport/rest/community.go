package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type communityStore interface {
	CreateVouch(ctx context.Context, p domain.VouchParams) (*domain.Vouch, error)
	GetVouches(ctx context.Context, targetUserID string) ([]*domain.Vouch, error)
	CreateDisputeResolution(ctx context.Context, p domain.DisputeResolutionParams) (*domain.DisputeResolution, error)
	GetActiveDisputes(ctx context.Context) ([]*domain.DisputeResolution, error)
	CreateDisputeVote(ctx context.Context, p domain.DisputeVoteParams) (*domain.DisputeVote, error)
	CreateUserReputation(ctx context.Context, p domain.UserReputationParams) (*domain.UserReputation, error)
	GetUserReputation(ctx context.Context, userID string) (*domain.UserReputation, error)
}

// CommunityHandler serves vouches, community disputes and reputation.
type CommunityHandler struct {
	log   *slog.Logger
	store communityStore
}

func NewCommunityHandler(log *slog.Logger, store communityStore) *CommunityHandler {
	return &CommunityHandler{log: log, store: store}
}

// CreateVouch handles POST /api/vouches. The voucher defaults to the
// caller.
func (h *CommunityHandler) CreateVouch(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.VouchParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.TargetUserID == nil || *p.TargetUserID == "" {
		handleError(h.log, w, r, domain.NewValidationError("targetUserId", "required"))
		return
	}
	if p.VoucherUserID == nil {
		p.VoucherUserID = &callerID
	}
	if *p.TargetUserID == *p.VoucherUserID {
		handleError(h.log, w, r, domain.NewValidationError("targetUserId", "cannot vouch for yourself"))
		return
	}

	v, err := h.store.CreateVouch(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, v)
}

// ListVouches handles GET /api/users/{id}/vouches.
func (h *CommunityHandler) ListVouches(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	vs, err := h.store.GetVouches(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, vs)
}

// CreateDispute handles POST /api/disputes. The initiator defaults to
// the caller.
func (h *CommunityHandler) CreateDispute(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.DisputeResolutionParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Title == nil || *p.Title == "" {
		handleError(h.log, w, r, domain.NewValidationError("title", "required"))
		return
	}
	if p.InitiatorUserID == nil {
		p.InitiatorUserID = &callerID
	}

	d, err := h.store.CreateDisputeResolution(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, d)
}

// ListActiveDisputes handles GET /api/disputes/active.
func (h *CommunityHandler) ListActiveDisputes(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ds, err := h.store.GetActiveDisputes(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ds)
}

// CreateVote handles POST /api/disputes/{id}/votes. The voter defaults
// to the caller; the dispute id comes from the path.
func (h *CommunityHandler) CreateVote(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.DisputeVoteParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	disputeID := r.PathValue("id")
	p.DisputeID = &disputeID
	if p.Vote == nil || *p.Vote == "" {
		handleError(h.log, w, r, domain.NewValidationError("vote", "required"))
		return
	}
	if p.VoterUserID == nil {
		p.VoterUserID = &callerID
	}

	v, err := h.store.CreateDisputeVote(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, v)
}

// CreateReputation handles POST /api/reputation. Staff only: reputation
// records are maintained by moderation tooling, not by users.
func (h *CommunityHandler) CreateReputation(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.UserReputationParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.UserID == nil || *p.UserID == "" {
		handleError(h.log, w, r, domain.NewValidationError("userId", "required"))
		return
	}

	rep, err := h.store.CreateUserReputation(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rep)
}

// GetReputation handles GET /api/users/{id}/reputation.
func (h *CommunityHandler) GetReputation(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rep, err := h.store.GetUserReputation(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}
