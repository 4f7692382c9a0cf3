// Package memory implements the domain store: one insertion-ordered
// in-memory table per entity kind, with the create/get/list/update
// contract shared by every kind. State is intentionally non-durable;
// everything is lost on restart.
package memory

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// Store is the aggregate domain store. A single RWMutex makes every
// operation an atomic snapshot; no operation holds the lock across a
// blocking call (password hashing happens outside the lock).
type Store struct {
	mu  sync.RWMutex
	log *slog.Logger

	users                *table[domain.User]
	cases                *table[domain.Case]
	evidence             *table[domain.Evidence]
	altAccounts          *table[domain.AltAccount]
	appeals              *table[domain.Appeal]
	passwordResets       *table[domain.PasswordResetRequest]
	caseUpdates          *table[domain.CaseUpdate]
	contactMessages      *table[domain.ContactMessage]
	staffAssignments     *table[domain.StaffAssignment]
	tribunalProceedings  *table[domain.TribunalProceeding]
	vouches              *table[domain.Vouch]
	disputes             *table[domain.DisputeResolution]
	disputeVotes         *table[domain.DisputeVote]
	altReports           *table[domain.AltDetectionReport]
	sessions             *table[domain.UserSession]
	staffPermissions     *table[domain.StaffPermission]
	staffPerformance     *table[domain.StaffPerformance]
	utilityCategories    *table[domain.UtilityCategory]
	utilityDocuments     *table[domain.UtilityDocument]
	documentRatings      *table[domain.DocumentRating]
	reputations          *table[domain.UserReputation]
	auditLogs            *table[domain.AuditLog]
	aiToolCategories     *table[domain.AiToolCategory]
	aiTools              *table[domain.AiTool]
	aiToolUsage          *table[domain.AiToolUsage]
	aiToolRatings        *table[domain.AiToolRating]
	freelancerProfiles   *table[domain.FreelancerProfile]
	projects             *table[domain.Project]
	projectApplications  *table[domain.ProjectApplication]
	projectReviews       *table[domain.ProjectReview]
	collabSpaces         *table[domain.CollaborationSpace]
	collabMembers        *table[domain.CollaborationMember]
	collabTasks          *table[domain.CollaborationTask]
	collabMessages       *table[domain.CollaborationMessage]
	verificationRequests *table[domain.VerificationRequest]
	securityEvents       *table[domain.SecurityEvent]

	// adminID is the id of the baseline administrator, used as the
	// default tribunal chairperson.
	adminID string
}

// New creates an empty store. Call SeedBaseline to populate the fixed
// administrator account and sample catalogs.
func New(logger *slog.Logger) *Store {
	return &Store{
		log:                  logger.With("component", "store"),
		users:                newTable[domain.User](),
		cases:                newTable[domain.Case](),
		evidence:             newTable[domain.Evidence](),
		altAccounts:          newTable[domain.AltAccount](),
		appeals:              newTable[domain.Appeal](),
		passwordResets:       newTable[domain.PasswordResetRequest](),
		caseUpdates:          newTable[domain.CaseUpdate](),
		contactMessages:      newTable[domain.ContactMessage](),
		staffAssignments:     newTable[domain.StaffAssignment](),
		tribunalProceedings:  newTable[domain.TribunalProceeding](),
		vouches:              newTable[domain.Vouch](),
		disputes:             newTable[domain.DisputeResolution](),
		disputeVotes:         newTable[domain.DisputeVote](),
		altReports:           newTable[domain.AltDetectionReport](),
		sessions:             newTable[domain.UserSession](),
		staffPermissions:     newTable[domain.StaffPermission](),
		staffPerformance:     newTable[domain.StaffPerformance](),
		utilityCategories:    newTable[domain.UtilityCategory](),
		utilityDocuments:     newTable[domain.UtilityDocument](),
		documentRatings:      newTable[domain.DocumentRating](),
		reputations:          newTable[domain.UserReputation](),
		auditLogs:            newTable[domain.AuditLog](),
		aiToolCategories:     newTable[domain.AiToolCategory](),
		aiTools:              newTable[domain.AiTool](),
		aiToolUsage:          newTable[domain.AiToolUsage](),
		aiToolRatings:        newTable[domain.AiToolRating](),
		freelancerProfiles:   newTable[domain.FreelancerProfile](),
		projects:             newTable[domain.Project](),
		projectApplications:  newTable[domain.ProjectApplication](),
		projectReviews:       newTable[domain.ProjectReview](),
		collabSpaces:         newTable[domain.CollaborationSpace](),
		collabMembers:        newTable[domain.CollaborationMember](),
		collabTasks:          newTable[domain.CollaborationTask](),
		collabMessages:       newTable[domain.CollaborationMessage](),
		verificationRequests: newTable[domain.VerificationRequest](),
		securityEvents:       newTable[domain.SecurityEvent](),
	}
}

// ---------------------------------------------------------------------------
// Default-filling helpers. Nil means "omitted" and takes the kind's default,
// mirroring the documented default table.
// ---------------------------------------------------------------------------

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func timeOr(p *time.Time, def time.Time) time.Time {
	if p != nil {
		return *p
	}
	return def
}

// strs normalizes an optional string slice: omitted becomes an empty
// sequence, never nil.
func strs(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func ptr[T any](v T) *T { return &v }
