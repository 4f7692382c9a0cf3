package domain

import "time"

// StaffAssignment assigns a staff member to a case or contact message.
type StaffAssignment struct {
	ID             string     `json:"id"`
	StaffUserID    string     `json:"staffUserId"`
	AssignmentType string     `json:"assignmentType"`
	AssignedBy     string     `json:"assignedBy"`
	CaseID         *string    `json:"caseId"`
	ContactID      *string    `json:"contactId"`
	Notes          *string    `json:"notes"`
	IsActive       bool       `json:"isActive"`
	AssignedAt     time.Time  `json:"assignedAt"`
	CompletedAt    *time.Time `json:"completedAt"`
}

// StaffAssignmentParams is the partial input for a staff assignment.
type StaffAssignmentParams struct {
	StaffUserID    *string    `json:"staffUserId"`
	AssignmentType *string    `json:"assignmentType"`
	AssignedBy     *string    `json:"assignedBy"`
	CaseID         *string    `json:"caseId"`
	ContactID      *string    `json:"contactId"`
	Notes          *string    `json:"notes"`
	IsActive       *bool      `json:"isActive"`
	CompletedAt    *time.Time `json:"completedAt"`
}

// StaffPermission grants a named permission to a staff member.
type StaffPermission struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Permission string     `json:"permission"`
	GrantedBy  string     `json:"grantedBy"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	IsActive   bool       `json:"isActive"`
	GrantedAt  time.Time  `json:"grantedAt"`
}

// StaffPermissionParams is the partial input for granting a permission.
type StaffPermissionParams struct {
	UserID     *string    `json:"userId"`
	Permission *string    `json:"permission"`
	GrantedBy  *string    `json:"grantedBy"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	IsActive   *bool      `json:"isActive"`
}

// StaffPerformance is a periodic performance snapshot for a staff member.
type StaffPerformance struct {
	ID                    string    `json:"id"`
	StaffID               string    `json:"staffId"`
	Period                string    `json:"period"`
	CasesHandled          int       `json:"casesHandled"`
	CasesResolved         int       `json:"casesResolved"`
	AverageResolutionTime *float64  `json:"averageResolutionTime"`
	QualityScore          *float64  `json:"qualityScore"`
	Commendations         int       `json:"commendations"`
	Warnings              int       `json:"warnings"`
	Notes                 *string   `json:"notes"`
	CreatedAt             time.Time `json:"createdAt"`
}

// StaffPerformanceParams is the partial input for a performance snapshot.
type StaffPerformanceParams struct {
	StaffID               *string  `json:"staffId"`
	Period                *string  `json:"period"`
	CasesHandled          *int     `json:"casesHandled"`
	CasesResolved         *int     `json:"casesResolved"`
	AverageResolutionTime *float64 `json:"averageResolutionTime"`
	QualityScore          *float64 `json:"qualityScore"`
	Commendations         *int     `json:"commendations"`
	Warnings              *int     `json:"warnings"`
	Notes                 *string  `json:"notes"`
}

// TribunalProceeding is a formal hearing scheduled for a case.
type TribunalProceeding struct {
	ID             string     `json:"id"`
	CaseID         string     `json:"caseId"`
	ProceedingType string     `json:"proceedingType"`
	ScheduledDate  *time.Time `json:"scheduledDate"`
	ActualDate     *time.Time `json:"actualDate"`
	Chairperson    string     `json:"chairperson"`
	PanelMembers   []string   `json:"panelMembers"`
	Outcome        *string    `json:"outcome"`
	DecisionReason *string    `json:"decisionReason"`
	NextSteps      *string    `json:"nextSteps"`
	Documents      []string   `json:"documents"`
	IsPublic       bool       `json:"isPublic"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// TribunalProceedingParams is the partial input for a tribunal proceeding.
type TribunalProceedingParams struct {
	CaseID         *string    `json:"caseId"`
	ProceedingType *string    `json:"proceedingType"`
	ScheduledDate  *time.Time `json:"scheduledDate"`
	ActualDate     *time.Time `json:"actualDate"`
	Chairperson    *string    `json:"chairperson"`
	PanelMembers   []string   `json:"panelMembers"`
	Outcome        *string    `json:"outcome"`
	DecisionReason *string    `json:"decisionReason"`
	NextSteps      *string    `json:"nextSteps"`
	Documents      []string   `json:"documents"`
	IsPublic       *bool      `json:"isPublic"`
}
