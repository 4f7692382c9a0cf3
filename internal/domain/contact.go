package domain

import "time"

// ContactMessage is an inbound message from the public contact form.
type ContactMessage struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Subject    string         `json:"subject"`
	Message    string         `json:"message"`
	Priority   string         `json:"priority"`
	Status     string         `json:"status"`
	AssignedTo *string        `json:"assignedTo"`
	Tags       []string       `json:"tags"`
	Metadata   map[string]any `json:"metadata"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	ResolvedAt *time.Time     `json:"resolvedAt"`
}

// ContactMessageParams is the partial input for a contact message.
type ContactMessageParams struct {
	Name       *string        `json:"name"`
	Email      *string        `json:"email"`
	Subject    *string        `json:"subject"`
	Message    *string        `json:"message"`
	Priority   *string        `json:"priority"`
	Status     *string        `json:"status"`
	AssignedTo *string        `json:"assignedTo"`
	Tags       []string       `json:"tags"`
	Metadata   map[string]any `json:"metadata"`
}

// PasswordResetRequest is a staff-approved request to reset a local password.
type PasswordResetRequest struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	ApprovedBy *string    `json:"approvedBy"`
	Token      *string    `json:"token"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `json:"approvedAt"`
}

// PasswordResetRequestParams is the partial input for a reset request.
type PasswordResetRequestParams struct {
	UserID     *string    `json:"userId"`
	Reason     *string    `json:"reason"`
	Status     *string    `json:"status"`
	ApprovedBy *string    `json:"approvedBy"`
	Token      *string    `json:"token"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	ApprovedAt *time.Time `json:"approvedAt"`
}
