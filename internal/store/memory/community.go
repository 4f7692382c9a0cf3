package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateVouch records a trust statement about a user.
func (s *Store) CreateVouch(ctx context.Context, p domain.VouchParams) (*domain.Vouch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	v := domain.Vouch{
		ID:            newID(),
		VoucherUserID: strOr(p.VoucherUserID, ""),
		TargetUserID:  strOr(p.TargetUserID, ""),
		Type:          strOr(p.Type, ""),
		Reason:        strOr(p.Reason, ""),
		Evidence:      p.Evidence,
		Weight:        intOr(p.Weight, 1),
		IsAnonymous:   boolOr(p.IsAnonymous, false),
		ExpiresAt:     p.ExpiresAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.vouches.put(v.ID, &v)

	out := v
	return &out, nil
}

// GetVouches lists vouches received by the given user.
func (s *Store) GetVouches(ctx context.Context, targetUserID string) ([]*domain.Vouch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Vouch
	for _, v := range s.vouches.all() {
		if v.TargetUserID == targetUserID {
			copied := *v
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateDisputeResolution opens a community dispute. Voting starts
// immediately unless a start date is supplied.
func (s *Store) CreateDisputeResolution(ctx context.Context, p domain.DisputeResolutionParams) (*domain.DisputeResolution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	d := domain.DisputeResolution{
		ID:              newID(),
		CaseID:          p.CaseID,
		InitiatorUserID: strOr(p.InitiatorUserID, ""),
		Title:           strOr(p.Title, ""),
		Description:     strOr(p.Description, ""),
		IsPublic:        boolOr(p.IsPublic, true),
		VotingStartDate: timeOr(p.VotingStartDate, now),
		VotingEndDate:   p.VotingEndDate,
		MinimumVotes:    intOr(p.MinimumVotes, 10),
		Status:          strOr(p.Status, domain.DisputeStatusActive),
		FinalDecision:   p.FinalDecision,
		Implementation:  p.Implementation,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.disputes.put(d.ID, &d)

	out := d
	return &out, nil
}

// GetActiveDisputes lists disputes still open for voting.
func (s *Store) GetActiveDisputes(ctx context.Context) ([]*domain.DisputeResolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.DisputeResolution
	for _, d := range s.disputes.all() {
		if d.Status == domain.DisputeStatusActive {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateDisputeVote casts a vote on a dispute. Weight defaults to 1.
func (s *Store) CreateDisputeVote(ctx context.Context, p domain.DisputeVoteParams) (*domain.DisputeVote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := domain.DisputeVote{
		ID:          newID(),
		DisputeID:   strOr(p.DisputeID, ""),
		VoterUserID: strOr(p.VoterUserID, ""),
		Vote:        strOr(p.Vote, ""),
		Reason:      p.Reason,
		Weight:      intOr(p.Weight, 1),
		CreatedAt:   time.Now(),
	}
	s.disputeVotes.put(v.ID, &v)

	out := v
	return &out, nil
}

// CreateUserReputation stores a reputation record. A fresh record starts
// at score 100 on the bronze trust tier.
func (s *Store) CreateUserReputation(ctx context.Context, p domain.UserReputationParams) (*domain.UserReputation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r := domain.UserReputation{
		ID:                newID(),
		UserID:            strOr(p.UserID, ""),
		ReputationScore:   intOr(p.ReputationScore, 100),
		VerificationLevel: intOr(p.VerificationLevel, 0),
		VouchesReceived:   intOr(p.VouchesReceived, 0),
		DevouchesReceived: intOr(p.DevouchesReceived, 0),
		CasesReported:     intOr(p.CasesReported, 0),
		ValidReports:      intOr(p.ValidReports, 0),
		FalseReports:      intOr(p.FalseReports, 0),
		CommunityScore:    intOr(p.CommunityScore, 0),
		TrustLevel:        strOr(p.TrustLevel, "bronze"),
		LastCalculated:    now,
		UpdatedAt:         now,
	}
	s.reputations.put(r.ID, &r)

	out := r
	return &out, nil
}

// GetUserReputation resolves the reputation record for a user. The
// lookup matches on UserID, not on the record's own id.
func (s *Store) GetUserReputation(ctx context.Context, userID string) (*domain.UserReputation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reputations.all() {
		if r.UserID == userID {
			out := *r
			return &out, nil
		}
	}
	return nil, fmt.Errorf("reputation for user %s: %w", userID, domain.ErrNotFound)
}
