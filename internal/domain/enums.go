package domain

// UserRole represents the access level of a portal account.
type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleTribunalHead UserRole = "tribunal_head"
	RoleSeniorStaff  UserRole = "senior_staff"
	RoleStaff        UserRole = "staff"
	RoleUser         UserRole = "user"
)

func (r UserRole) String() string { return string(r) }

// IsStaff reports whether the role grants staff-level access.
func (r UserRole) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleTribunalHead, RoleSeniorStaff, RoleStaff:
		return true
	}
	return false
}

// Case lifecycle statuses. The store does not validate transitions;
// callers move cases through these states explicitly.
const (
	CaseStatusPending       = "pending"
	CaseStatusInvestigating = "investigating"
	CaseStatusResolved      = "resolved"
	CaseStatusRejected      = "rejected"
	CaseStatusArchived      = "archived"
)

// Priorities shared by cases, contact messages, projects and tasks.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Dispute resolution statuses.
const (
	DisputeStatusActive = "active"
	DisputeStatusClosed = "closed"
)

// AI tool usage statuses.
const (
	UsageStatusPending   = "pending"
	UsageStatusRunning   = "running"
	UsageStatusCompleted = "completed"
	UsageStatusFailed    = "failed"
)

// Review-style statuses shared by appeals, password resets, alt-detection
// reports, applications and verification requests.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)
