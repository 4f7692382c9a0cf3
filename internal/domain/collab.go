package domain

import "time"

// CollaborationSpace is a shared workspace owned by a user.
type CollaborationSpace struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	InviteCode  *string   `json:"inviteCode"`
	MaxMembers  int       `json:"maxMembers"`
	MemberCount int       `json:"memberCount"`
	Tags        []string  `json:"tags"`
	Category    *string   `json:"category"`
	Rules       *string   `json:"rules"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CollaborationSpaceParams is the partial input for a space.
type CollaborationSpaceParams struct {
	OwnerID     *string  `json:"ownerId"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	IsPublic    *bool    `json:"isPublic"`
	InviteCode  *string  `json:"inviteCode"`
	MaxMembers  *int     `json:"maxMembers"`
	MemberCount *int     `json:"memberCount"`
	Tags        []string `json:"tags"`
	Category    *string  `json:"category"`
	Rules       *string  `json:"rules"`
	IsActive    *bool    `json:"isActive"`
}

// CollaborationMember is a user's membership in a space.
type CollaborationMember struct {
	ID          string    `json:"id"`
	SpaceID     string    `json:"spaceId"`
	UserID      string    `json:"userId"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	LastActive  time.Time `json:"lastActive"`
	IsActive    bool      `json:"isActive"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// CollaborationMemberParams is the partial input for a membership.
type CollaborationMemberParams struct {
	SpaceID     *string    `json:"spaceId"`
	UserID      *string    `json:"userId"`
	Role        *string    `json:"role"`
	Permissions []string   `json:"permissions"`
	LastActive  *time.Time `json:"lastActive"`
	IsActive    *bool      `json:"isActive"`
}

// CollaborationTask is a task on a space's board.
type CollaborationTask struct {
	ID             string     `json:"id"`
	SpaceID        string     `json:"spaceId"`
	Title          string     `json:"title"`
	CreatedBy      string     `json:"createdBy"`
	Description    *string    `json:"description"`
	AssignedTo     *string    `json:"assignedTo"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	Tags           []string   `json:"tags"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *int       `json:"estimatedHours"`
	ActualHours    *int       `json:"actualHours"`
	Attachments    []string   `json:"attachments"`
	Dependencies   []string   `json:"dependencies"`
	Progress       int        `json:"progress"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	CompletedAt    *time.Time `json:"completedAt"`
}

// CollaborationTaskParams is the partial input for a task.
type CollaborationTaskParams struct {
	SpaceID        *string    `json:"spaceId"`
	Title          *string    `json:"title"`
	CreatedBy      *string    `json:"createdBy"`
	Description    *string    `json:"description"`
	AssignedTo     *string    `json:"assignedTo"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"`
	Tags           []string   `json:"tags"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *int       `json:"estimatedHours"`
	ActualHours    *int       `json:"actualHours"`
	Attachments    []string   `json:"attachments"`
	Dependencies   []string   `json:"dependencies"`
	Progress       *int       `json:"progress"`
}

// CollaborationMessage is a chat message in a space, optionally tied to a task.
type CollaborationMessage struct {
	ID          string     `json:"id"`
	SpaceID     string     `json:"spaceId"`
	SenderID    string     `json:"senderId"`
	Content     string     `json:"content"`
	TaskID      *string    `json:"taskId"`
	MessageType string     `json:"messageType"`
	Attachments []string   `json:"attachments"`
	Mentions    []string   `json:"mentions"`
	IsEdited    bool       `json:"isEdited"`
	EditedAt    *time.Time `json:"editedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CollaborationMessageParams is the partial input for a message.
type CollaborationMessageParams struct {
	SpaceID     *string  `json:"spaceId"`
	SenderID    *string  `json:"senderId"`
	Content     *string  `json:"content"`
	TaskID      *string  `json:"taskId"`
	MessageType *string  `json:"messageType"`
	Attachments []string `json:"attachments"`
	Mentions    []string `json:"mentions"`
	IsEdited    *bool    `json:"isEdited"`
}
