package domain

import "time"

// Case is a fraud/dispute report filed against a user.
type Case struct {
	ID               string         `json:"id"`
	CaseNumber       string         `json:"caseNumber"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Type             string         `json:"type"`
	ReportedUserID   string         `json:"reportedUserId"`
	ReporterUserID   string         `json:"reporterUserId"`
	Status           string         `json:"status"`
	Priority         string         `json:"priority"`
	StaffUserID      *string        `json:"staffUserId"`
	AmountInvolved   *float64       `json:"amountInvolved"`
	Currency         string         `json:"currency"`
	Tags             []string       `json:"tags"`
	Metadata         map[string]any `json:"metadata"`
	AiAnalysis       map[string]any `json:"aiAnalysis"`
	AiRiskScore      *float64       `json:"aiRiskScore"`
	AiUrgencyLevel   *string        `json:"aiUrgencyLevel"`
	ModerationAdvice *string        `json:"moderationAdvice"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	ResolvedAt       *time.Time     `json:"resolvedAt"`
}

// CaseParams is the partial input for creating or updating a case.
type CaseParams struct {
	Title            *string        `json:"title"`
	Description      *string        `json:"description"`
	Type             *string        `json:"type"`
	ReportedUserID   *string        `json:"reportedUserId"`
	ReporterUserID   *string        `json:"reporterUserId"`
	Status           *string        `json:"status"`
	Priority         *string        `json:"priority"`
	StaffUserID      *string        `json:"staffUserId"`
	AmountInvolved   *float64       `json:"amountInvolved"`
	Currency         *string        `json:"currency"`
	Tags             []string       `json:"tags"`
	Metadata         map[string]any `json:"metadata"`
	AiAnalysis       map[string]any `json:"aiAnalysis"`
	AiRiskScore      *float64       `json:"aiRiskScore"`
	AiUrgencyLevel   *string        `json:"aiUrgencyLevel"`
	ModerationAdvice *string        `json:"moderationAdvice"`
	ResolvedAt       *time.Time     `json:"resolvedAt"`
}

// CaseFilter contains filtering/pagination parameters for case listings.
// All predicates are ANDed; Search matches title or description,
// case-insensitively.
type CaseFilter struct {
	Status *string `json:"status"`
	Type   *string `json:"type"`
	Search *string `json:"search"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// Evidence is a file or link attached to a case.
type Evidence struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"caseId"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Description *string   `json:"description"`
	UploadedBy  string    `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EvidenceParams is the partial input for attaching evidence.
type EvidenceParams struct {
	CaseID      *string `json:"caseId"`
	Type        *string `json:"type"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	UploadedBy  *string `json:"uploadedBy"`
}

// Appeal is a request to overturn a case decision.
type Appeal struct {
	ID          string     `json:"id"`
	CaseID      string     `json:"caseId"`
	UserID      string     `json:"userId"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	ReviewedBy  *string    `json:"reviewedBy"`
	ReviewNotes *string    `json:"reviewNotes"`
	CreatedAt   time.Time  `json:"createdAt"`
	ReviewedAt  *time.Time `json:"reviewedAt"`
}

// AppealParams is the partial input for filing an appeal.
type AppealParams struct {
	CaseID      *string `json:"caseId"`
	UserID      *string `json:"userId"`
	Reason      *string `json:"reason"`
	Status      *string `json:"status"`
	ReviewedBy  *string `json:"reviewedBy"`
	ReviewNotes *string `json:"reviewNotes"`
}

// CaseUpdate is an entry in a case's change history.
type CaseUpdate struct {
	ID         string    `json:"id"`
	CaseID     string    `json:"caseId"`
	UserID     string    `json:"userId"`
	UpdateType string    `json:"updateType"`
	OldValue   *string   `json:"oldValue"`
	NewValue   *string   `json:"newValue"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CaseUpdateParams is the partial input for recording a case update.
type CaseUpdateParams struct {
	CaseID     *string `json:"caseId"`
	UserID     *string `json:"userId"`
	UpdateType *string `json:"updateType"`
	OldValue   *string `json:"oldValue"`
	NewValue   *string `json:"newValue"`
	Comment    *string `json:"comment"`
}
