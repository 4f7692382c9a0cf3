package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateFreelancerProfile stores a marketplace profile.
func (s *Store) CreateFreelancerProfile(ctx context.Context, p domain.FreelancerProfileParams) (*domain.FreelancerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	fp := domain.FreelancerProfile{
		ID:                newID(),
		UserID:            strOr(p.UserID, ""),
		Title:             strOr(p.Title, ""),
		Bio:               strOr(p.Bio, ""),
		Skills:            strs(p.Skills),
		IsVerified:        boolOr(p.IsVerified, false),
		VerificationLevel: strOr(p.VerificationLevel, "basic"),
		Specializations:   strs(p.Specializations),
		HourlyRate:        p.HourlyRate,
		Currency:          strOr(p.Currency, "USD"),
		Availability:      strOr(p.Availability, "available"),
		Portfolio:         p.Portfolio,
		CompletedJobs:     intOr(p.CompletedJobs, 0),
		AverageRating:     p.AverageRating,
		TotalEarnings:     strOr(p.TotalEarnings, "0"),
		ResponseTime:      p.ResponseTime,
		Languages:         strs(p.Languages),
		Timezone:          p.Timezone,
		IsActive:          boolOr(p.IsActive, true),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.freelancerProfiles.put(fp.ID, &fp)

	out := fp
	return &out, nil
}

// GetFreelancerProfile resolves a profile by its owning user.
func (s *Store) GetFreelancerProfile(ctx context.Context, userID string) (*domain.FreelancerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, fp := range s.freelancerProfiles.all() {
		if fp.UserID == userID {
			out := *fp
			return &out, nil
		}
	}
	return nil, fmt.Errorf("freelancer profile for user %s: %w", userID, domain.ErrNotFound)
}

// GetFreelancerProfiles lists active profiles. The skills filter matches
// profiles holding ANY of the requested skills.
func (s *Store) GetFreelancerProfiles(ctx context.Context, f domain.FreelancerFilter) ([]*domain.FreelancerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.FreelancerProfile
	for _, fp := range s.freelancerProfiles.all() {
		if !fp.IsActive {
			continue
		}
		if f.Verified != nil && fp.IsVerified != *f.Verified {
			continue
		}
		if len(f.Skills) > 0 && !anyOverlap(fp.Skills, f.Skills) {
			continue
		}
		copied := *fp
		out = append(out, &copied)
	}
	return out, nil
}

// UpdateFreelancerProfile shallow-merges non-nil fields into the profile
// owned by userID and refreshes UpdatedAt.
func (s *Store) UpdateFreelancerProfile(ctx context.Context, userID string, p domain.FreelancerProfileParams) (*domain.FreelancerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fp *domain.FreelancerProfile
	for _, cand := range s.freelancerProfiles.all() {
		if cand.UserID == userID {
			fp = cand
			break
		}
	}
	if fp == nil {
		return nil, fmt.Errorf("freelancer profile for user %s: %w", userID, domain.ErrNotFound)
	}

	if p.UserID != nil {
		fp.UserID = *p.UserID
	}
	if p.Title != nil {
		fp.Title = *p.Title
	}
	if p.Bio != nil {
		fp.Bio = *p.Bio
	}
	if p.Skills != nil {
		fp.Skills = p.Skills
	}
	if p.IsVerified != nil {
		fp.IsVerified = *p.IsVerified
	}
	if p.VerificationLevel != nil {
		fp.VerificationLevel = *p.VerificationLevel
	}
	if p.Specializations != nil {
		fp.Specializations = p.Specializations
	}
	if p.HourlyRate != nil {
		fp.HourlyRate = p.HourlyRate
	}
	if p.Currency != nil {
		fp.Currency = *p.Currency
	}
	if p.Availability != nil {
		fp.Availability = *p.Availability
	}
	if p.Portfolio != nil {
		fp.Portfolio = p.Portfolio
	}
	if p.CompletedJobs != nil {
		fp.CompletedJobs = *p.CompletedJobs
	}
	if p.AverageRating != nil {
		fp.AverageRating = p.AverageRating
	}
	if p.TotalEarnings != nil {
		fp.TotalEarnings = *p.TotalEarnings
	}
	if p.ResponseTime != nil {
		fp.ResponseTime = p.ResponseTime
	}
	if p.Languages != nil {
		fp.Languages = p.Languages
	}
	if p.Timezone != nil {
		fp.Timezone = p.Timezone
	}
	if p.IsActive != nil {
		fp.IsActive = *p.IsActive
	}
	fp.UpdatedAt = time.Now()

	out := *fp
	return &out, nil
}

// CreateProject posts a new marketplace project in the draft state.
func (s *Store) CreateProject(ctx context.Context, p domain.ProjectParams) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	pr := domain.Project{
		ID:               newID(),
		ClientID:         strOr(p.ClientID, ""),
		Title:            strOr(p.Title, ""),
		Description:      strOr(p.Description, ""),
		Skills:           strs(p.Skills),
		FreelancerID:     p.FreelancerID,
		Budget:           p.Budget,
		BudgetType:       strOr(p.BudgetType, "fixed"),
		Currency:         strOr(p.Currency, "USD"),
		Deadline:         p.Deadline,
		Status:           strOr(p.Status, "draft"),
		Priority:         strOr(p.Priority, domain.PriorityMedium),
		IsPublic:         boolOr(p.IsPublic, true),
		IsVerifiedOnly:   boolOr(p.IsVerifiedOnly, false),
		ApplicationCount: intOr(p.ApplicationCount, 0),
		Attachments:      strs(p.Attachments),
		EstimatedHours:   p.EstimatedHours,
		ActualHours:      p.ActualHours,
		Milestones:       p.Milestones,
		Tags:             strs(p.Tags),
		CreatedAt:        now,
		UpdatedAt:        now,
		StartedAt:        nil,
		CompletedAt:      nil,
	}
	s.projects.put(pr.ID, &pr)

	out := pr
	return &out, nil
}

// GetProject returns a project by id.
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pr, ok := s.projects.get(id)
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	out := *pr
	return &out, nil
}

// GetProjects lists projects matching every supplied predicate. The
// skills filter matches projects needing ANY of the requested skills.
func (s *Store) GetProjects(ctx context.Context, f domain.ProjectFilter) ([]*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Project
	for _, pr := range s.projects.all() {
		if f.Status != nil && pr.Status != *f.Status {
			continue
		}
		if f.ClientID != nil && pr.ClientID != *f.ClientID {
			continue
		}
		if len(f.Skills) > 0 && !anyOverlap(pr.Skills, f.Skills) {
			continue
		}
		copied := *pr
		out = append(out, &copied)
	}
	return out, nil
}

// UpdateProject shallow-merges non-nil fields and refreshes UpdatedAt.
func (s *Store) UpdateProject(ctx context.Context, id string, p domain.ProjectParams) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pr, ok := s.projects.get(id)
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	if p.ClientID != nil {
		pr.ClientID = *p.ClientID
	}
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Skills != nil {
		pr.Skills = p.Skills
	}
	if p.FreelancerID != nil {
		pr.FreelancerID = p.FreelancerID
	}
	if p.Budget != nil {
		pr.Budget = p.Budget
	}
	if p.BudgetType != nil {
		pr.BudgetType = *p.BudgetType
	}
	if p.Currency != nil {
		pr.Currency = *p.Currency
	}
	if p.Deadline != nil {
		pr.Deadline = p.Deadline
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Priority != nil {
		pr.Priority = *p.Priority
	}
	if p.IsPublic != nil {
		pr.IsPublic = *p.IsPublic
	}
	if p.IsVerifiedOnly != nil {
		pr.IsVerifiedOnly = *p.IsVerifiedOnly
	}
	if p.ApplicationCount != nil {
		pr.ApplicationCount = *p.ApplicationCount
	}
	if p.Attachments != nil {
		pr.Attachments = p.Attachments
	}
	if p.EstimatedHours != nil {
		pr.EstimatedHours = p.EstimatedHours
	}
	if p.ActualHours != nil {
		pr.ActualHours = p.ActualHours
	}
	if p.Milestones != nil {
		pr.Milestones = p.Milestones
	}
	if p.Tags != nil {
		pr.Tags = p.Tags
	}
	if p.StartedAt != nil {
		pr.StartedAt = p.StartedAt
	}
	if p.CompletedAt != nil {
		pr.CompletedAt = p.CompletedAt
	}
	pr.UpdatedAt = time.Now()

	out := *pr
	return &out, nil
}

// CreateProjectApplication files a freelancer's bid on a project.
func (s *Store) CreateProjectApplication(ctx context.Context, p domain.ProjectApplicationParams) (*domain.ProjectApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	a := domain.ProjectApplication{
		ID:               newID(),
		ProjectID:        strOr(p.ProjectID, ""),
		FreelancerID:     strOr(p.FreelancerID, ""),
		CoverLetter:      strOr(p.CoverLetter, ""),
		ProposedBudget:   p.ProposedBudget,
		ProposedTimeline: p.ProposedTimeline,
		Portfolio:        p.Portfolio,
		Status:           strOr(p.Status, domain.ReviewStatusPending),
		ClientNotes:      p.ClientNotes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.projectApplications.put(a.ID, &a)

	out := a
	return &out, nil
}

// GetProjectApplications lists bids on the given project.
func (s *Store) GetProjectApplications(ctx context.Context, projectID string) ([]*domain.ProjectApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.ProjectApplication
	for _, a := range s.projectApplications.all() {
		if a.ProjectID == projectID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateProjectReview stores a post-completion review.
func (s *Store) CreateProjectReview(ctx context.Context, p domain.ProjectReviewParams) (*domain.ProjectReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.ProjectReview{
		ID:             newID(),
		ProjectID:      strOr(p.ProjectID, ""),
		ReviewerID:     strOr(p.ReviewerID, ""),
		RevieweeID:     strOr(p.RevieweeID, ""),
		Rating:         intOr(p.Rating, 0),
		Review:         p.Review,
		Skills:         p.Skills,
		WouldWorkAgain: p.WouldWorkAgain,
		IsPublic:       boolOr(p.IsPublic, true),
		CreatedAt:      time.Now(),
	}
	s.projectReviews.put(r.ID, &r)

	out := r
	return &out, nil
}

// anyOverlap reports whether have contains at least one of want.
func anyOverlap(have, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}
