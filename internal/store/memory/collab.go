package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// CreateCollaborationSpace opens a workspace. The owner counts as the
// first member.
func (s *Store) CreateCollaborationSpace(ctx context.Context, p domain.CollaborationSpaceParams) (*domain.CollaborationSpace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sp := domain.CollaborationSpace{
		ID:          newID(),
		OwnerID:     strOr(p.OwnerID, ""),
		Name:        strOr(p.Name, ""),
		Description: p.Description,
		IsPublic:    boolOr(p.IsPublic, false),
		InviteCode:  p.InviteCode,
		MaxMembers:  intOr(p.MaxMembers, 10),
		MemberCount: intOr(p.MemberCount, 1),
		Tags:        strs(p.Tags),
		Category:    p.Category,
		Rules:       p.Rules,
		IsActive:    boolOr(p.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.collabSpaces.put(sp.ID, &sp)

	out := sp
	return &out, nil
}

// GetCollaborationSpace returns a space by id.
func (s *Store) GetCollaborationSpace(ctx context.Context, id string) (*domain.CollaborationSpace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sp, ok := s.collabSpaces.get(id)
	if !ok {
		return nil, fmt.Errorf("collaboration space %s: %w", id, domain.ErrNotFound)
	}
	out := *sp
	return &out, nil
}

// GetCollaborationSpaces lists spaces the user owns or is an active
// member of.
func (s *Store) GetCollaborationSpaces(ctx context.Context, userID string) ([]*domain.CollaborationSpace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	memberOf := make(map[string]bool)
	for _, m := range s.collabMembers.all() {
		if m.UserID == userID && m.IsActive {
			memberOf[m.SpaceID] = true
		}
	}

	var out []*domain.CollaborationSpace
	for _, sp := range s.collabSpaces.all() {
		if sp.OwnerID == userID || memberOf[sp.ID] {
			copied := *sp
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateCollaborationMember adds a user to a space.
func (s *Store) CreateCollaborationMember(ctx context.Context, p domain.CollaborationMemberParams) (*domain.CollaborationMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	m := domain.CollaborationMember{
		ID:          newID(),
		SpaceID:     strOr(p.SpaceID, ""),
		UserID:      strOr(p.UserID, ""),
		Role:        strOr(p.Role, "member"),
		Permissions: strs(p.Permissions),
		LastActive:  timeOr(p.LastActive, now),
		IsActive:    boolOr(p.IsActive, true),
		JoinedAt:    now,
	}
	s.collabMembers.put(m.ID, &m)

	out := m
	return &out, nil
}

// CreateCollaborationTask adds a task to a space's board.
func (s *Store) CreateCollaborationTask(ctx context.Context, p domain.CollaborationTaskParams) (*domain.CollaborationTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	t := domain.CollaborationTask{
		ID:             newID(),
		SpaceID:        strOr(p.SpaceID, ""),
		Title:          strOr(p.Title, ""),
		CreatedBy:      strOr(p.CreatedBy, ""),
		Description:    p.Description,
		AssignedTo:     p.AssignedTo,
		Status:         strOr(p.Status, "todo"),
		Priority:       strOr(p.Priority, domain.PriorityMedium),
		Tags:           strs(p.Tags),
		DueDate:        p.DueDate,
		EstimatedHours: p.EstimatedHours,
		ActualHours:    p.ActualHours,
		Attachments:    strs(p.Attachments),
		Dependencies:   strs(p.Dependencies),
		Progress:       intOr(p.Progress, 0),
		CreatedAt:      now,
		UpdatedAt:      now,
		CompletedAt:    nil,
	}
	s.collabTasks.put(t.ID, &t)

	out := t
	return &out, nil
}

// GetCollaborationTasks lists the tasks on the given space's board.
func (s *Store) GetCollaborationTasks(ctx context.Context, spaceID string) ([]*domain.CollaborationTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.CollaborationTask
	for _, t := range s.collabTasks.all() {
		if t.SpaceID == spaceID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateCollaborationMessage posts a chat message to a space.
func (s *Store) CreateCollaborationMessage(ctx context.Context, p domain.CollaborationMessageParams) (*domain.CollaborationMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := domain.CollaborationMessage{
		ID:          newID(),
		SpaceID:     strOr(p.SpaceID, ""),
		SenderID:    strOr(p.SenderID, ""),
		Content:     strOr(p.Content, ""),
		TaskID:      p.TaskID,
		MessageType: strOr(p.MessageType, "text"),
		Attachments: strs(p.Attachments),
		Mentions:    strs(p.Mentions),
		IsEdited:    boolOr(p.IsEdited, false),
		EditedAt:    nil,
		CreatedAt:   time.Now(),
	}
	s.collabMessages.put(m.ID, &m)

	out := m
	return &out, nil
}

// GetCollaborationMessages lists a space's chat oldest first, optionally
// narrowed to one task's thread (empty taskID returns the whole space).
func (s *Store) GetCollaborationMessages(ctx context.Context, spaceID, taskID string) ([]*domain.CollaborationMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.CollaborationMessage
	for _, m := range s.collabMessages.all() {
		if m.SpaceID != spaceID {
			continue
		}
		if taskID != "" && (m.TaskID == nil || *m.TaskID != taskID) {
			continue
		}
		copied := *m
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
