package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateAiToolCategory adds a tool category.
func (s *Store) CreateAiToolCategory(ctx context.Context, p domain.AiToolCategoryParams) (*domain.AiToolCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.AiToolCategory{
		ID:          newID(),
		Name:        strOr(p.Name, ""),
		Description: p.Description,
		Icon:        p.Icon,
		TargetRole:  p.TargetRole,
		IsActive:    boolOr(p.IsActive, true),
		SortOrder:   intOr(p.SortOrder, 0),
		CreatedAt:   time.Now(),
	}
	s.aiToolCategories.put(c.ID, &c)

	out := c
	return &out, nil
}

// GetAiToolCategories returns categories ordered by sort order.
func (s *Store) GetAiToolCategories(ctx context.Context) ([]*domain.AiToolCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.AiToolCategory, 0, s.aiToolCategories.len())
	for _, c := range s.aiToolCategories.all() {
		copied := *c
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// CreateAiTool registers a tool.
func (s *Store) CreateAiTool(ctx context.Context, p domain.AiToolParams) (*domain.AiTool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	t := domain.AiTool{
		ID:           newID(),
		CategoryID:   strOr(p.CategoryID, ""),
		Name:         strOr(p.Name, ""),
		Description:  strOr(p.Description, ""),
		Instructions: strOr(p.Instructions, ""),
		InputFields:  p.InputFields,
		OutputFormat: strOr(p.OutputFormat, "text"),
		RequiredRole: strOr(p.RequiredRole, "user"),
		UsageCount:   intOr(p.UsageCount, 0),
		Rating:       p.Rating,
		IsActive:     boolOr(p.IsActive, true),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.aiTools.put(t.ID, &t)

	out := t
	return &out, nil
}

// GetAiTools lists active tools, optionally restricted to one category
// (empty categoryID returns all). Inactive tools are never listed.
func (s *Store) GetAiTools(ctx context.Context, categoryID string) ([]*domain.AiTool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.AiTool
	for _, t := range s.aiTools.all() {
		if !t.IsActive {
			continue
		}
		if categoryID != "" && t.CategoryID != categoryID {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

// GetAiTool returns a tool by id, active or not.
func (s *Store) GetAiTool(ctx context.Context, id string) (*domain.AiTool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.aiTools.get(id)
	if !ok {
		return nil, fmt.Errorf("ai tool %s: %w", id, domain.ErrNotFound)
	}
	out := *t
	return &out, nil
}

// CreateAiToolUsage records a tool invocation in the pending state.
func (s *Store) CreateAiToolUsage(ctx context.Context, p domain.AiToolUsageParams) (*domain.AiToolUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := domain.AiToolUsage{
		ID:             newID(),
		ToolID:         strOr(p.ToolID, ""),
		UserID:         strOr(p.UserID, ""),
		InputData:      p.InputData,
		OutputData:     p.OutputData,
		Status:         strOr(p.Status, domain.UsageStatusPending),
		ErrorMessage:   p.ErrorMessage,
		ProcessingTime: p.ProcessingTime,
		Rating:         p.Rating,
		Feedback:       p.Feedback,
		CreatedAt:      time.Now(),
		CompletedAt:    nil,
	}
	s.aiToolUsage.put(u.ID, &u)

	out := u
	return &out, nil
}

// UpdateAiToolUsage shallow-merges non-nil fields. Moving the record to
// the completed status stamps CompletedAt; other updates leave it alone.
func (s *Store) UpdateAiToolUsage(ctx context.Context, id string, p domain.AiToolUsageParams) (*domain.AiToolUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.aiToolUsage.get(id)
	if !ok {
		return nil, fmt.Errorf("ai tool usage %s: %w", id, domain.ErrNotFound)
	}

	if p.ToolID != nil {
		u.ToolID = *p.ToolID
	}
	if p.UserID != nil {
		u.UserID = *p.UserID
	}
	if p.InputData != nil {
		u.InputData = p.InputData
	}
	if p.OutputData != nil {
		u.OutputData = p.OutputData
	}
	if p.Status != nil {
		u.Status = *p.Status
		if *p.Status == domain.UsageStatusCompleted {
			now := time.Now()
			u.CompletedAt = &now
		}
	}
	if p.ErrorMessage != nil {
		u.ErrorMessage = p.ErrorMessage
	}
	if p.ProcessingTime != nil {
		u.ProcessingTime = p.ProcessingTime
	}
	if p.Rating != nil {
		u.Rating = p.Rating
	}
	if p.Feedback != nil {
		u.Feedback = p.Feedback
	}

	out := *u
	return &out, nil
}

// CreateAiToolRating stores a user's rating of a tool.
func (s *Store) CreateAiToolRating(ctx context.Context, p domain.AiToolRatingParams) (*domain.AiToolRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.AiToolRating{
		ID:                     newID(),
		ToolID:                 strOr(p.ToolID, ""),
		UserID:                 strOr(p.UserID, ""),
		Rating:                 intOr(p.Rating, 0),
		Review:                 p.Review,
		IsHelpful:              p.IsHelpful,
		ImprovementSuggestions: p.ImprovementSuggestions,
		CreatedAt:              time.Now(),
	}
	s.aiToolRatings.put(r.ID, &r)

	out := r
	return &out, nil
}
