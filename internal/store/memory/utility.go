package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateUtilityCategory adds a knowledge-base category.
func (s *Store) CreateUtilityCategory(ctx context.Context, p domain.UtilityCategoryParams) (*domain.UtilityCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.UtilityCategory{
		ID:          newID(),
		Name:        strOr(p.Name, ""),
		Description: p.Description,
		Icon:        p.Icon,
		SortOrder:   intOr(p.SortOrder, 0),
		IsActive:    boolOr(p.IsActive, true),
		CreatedAt:   time.Now(),
	}
	s.utilityCategories.put(c.ID, &c)

	out := c
	return &out, nil
}

// GetUtilityCategories returns categories ordered by sort order.
func (s *Store) GetUtilityCategories(ctx context.Context) ([]*domain.UtilityCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.UtilityCategory, 0, s.utilityCategories.len())
	for _, c := range s.utilityCategories.all() {
		copied := *c
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// CreateUtilityDocument stores a knowledge-base document. Documents are
// staff-only unless marked public.
func (s *Store) CreateUtilityDocument(ctx context.Context, p domain.UtilityDocumentParams) (*domain.UtilityDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	d := domain.UtilityDocument{
		ID:            newID(),
		CategoryID:    strOr(p.CategoryID, ""),
		Title:         strOr(p.Title, ""),
		Content:       strOr(p.Content, ""),
		Description:   p.Description,
		Tags:          strs(p.Tags),
		AuthorID:      strOr(p.AuthorID, ""),
		LastEditedBy:  p.LastEditedBy,
		Version:       intOr(p.Version, 1),
		IsPublic:      boolOr(p.IsPublic, false),
		AccessLevel:   strOr(p.AccessLevel, "staff"),
		DownloadCount: intOr(p.DownloadCount, 0),
		Rating:        p.Rating,
		RatingCount:   intOr(p.RatingCount, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.utilityDocuments.put(d.ID, &d)

	out := d
	return &out, nil
}

// GetUtilityDocuments lists documents, optionally restricted to one
// category (empty categoryID returns all).
func (s *Store) GetUtilityDocuments(ctx context.Context, categoryID string) ([]*domain.UtilityDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.UtilityDocument
	for _, d := range s.utilityDocuments.all() {
		if categoryID != "" && d.CategoryID != categoryID {
			continue
		}
		copied := *d
		out = append(out, &copied)
	}
	return out, nil
}

// UpdateUtilityDocument shallow-merges non-nil fields and refreshes
// UpdatedAt.
func (s *Store) UpdateUtilityDocument(ctx context.Context, id string, p domain.UtilityDocumentParams) (*domain.UtilityDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.utilityDocuments.get(id)
	if !ok {
		return nil, fmt.Errorf("utility document %s: %w", id, domain.ErrNotFound)
	}

	if p.CategoryID != nil {
		d.CategoryID = *p.CategoryID
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Content != nil {
		d.Content = *p.Content
	}
	if p.Description != nil {
		d.Description = p.Description
	}
	if p.Tags != nil {
		d.Tags = p.Tags
	}
	if p.AuthorID != nil {
		d.AuthorID = *p.AuthorID
	}
	if p.LastEditedBy != nil {
		d.LastEditedBy = p.LastEditedBy
	}
	if p.Version != nil {
		d.Version = *p.Version
	}
	if p.IsPublic != nil {
		d.IsPublic = *p.IsPublic
	}
	if p.AccessLevel != nil {
		d.AccessLevel = *p.AccessLevel
	}
	if p.DownloadCount != nil {
		d.DownloadCount = *p.DownloadCount
	}
	if p.Rating != nil {
		d.Rating = p.Rating
	}
	if p.RatingCount != nil {
		d.RatingCount = *p.RatingCount
	}
	d.UpdatedAt = time.Now()

	out := *d
	return &out, nil
}

// CreateDocumentRating stores a user's rating of a document.
func (s *Store) CreateDocumentRating(ctx context.Context, p domain.DocumentRatingParams) (*domain.DocumentRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.DocumentRating{
		ID:         newID(),
		DocumentID: strOr(p.DocumentID, ""),
		UserID:     strOr(p.UserID, ""),
		Rating:     intOr(p.Rating, 0),
		Review:     p.Review,
		CreatedAt:  time.Now(),
	}
	s.documentRatings.put(r.ID, &r)

	out := r
	return &out, nil
}
