package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ownersalliance/trustportal/internal/store/memory"
)

// NewRouter builds the full API surface on a ServeMux. Authentication
// context and cross-cutting middleware are applied by the caller.
func NewRouter(log *slog.Logger, store *memory.Store, auth authService, bcryptCost int, version string) *http.ServeMux {
	mux := http.NewServeMux()

	authH := NewAuthHandler(log, auth, store)
	userH := NewUserHandler(log, store, bcryptCost)
	caseH := NewCaseHandler(log, store)
	contactH := NewContactHandler(log, store)
	staffH := NewStaffOpsHandler(log, store)
	commH := NewCommunityHandler(log, store)
	altH := NewAltDetectHandler(log, store)
	secH := NewSecurityHandler(log, store)
	utilH := NewUtilityHandler(log, store)
	aiH := NewAiToolHandler(log, store)
	freeH := NewFreelanceHandler(log, store)
	collabH := NewCollabHandler(log, store)
	dashH := NewDashboardHandler(log, store)
	healthH := NewHealthHandler(version)

	// Auth
	mux.HandleFunc("POST /api/auth/login", authH.Login)
	mux.HandleFunc("POST /api/auth/discord", authH.LoginDiscord)
	mux.HandleFunc("GET /api/auth/me", authH.Me)

	// Accounts
	mux.HandleFunc("POST /api/users", userH.Create)
	mux.HandleFunc("GET /api/users", userH.List)
	mux.HandleFunc("GET /api/users/{id}", userH.Get)
	mux.HandleFunc("PATCH /api/users/{id}", userH.Update)
	mux.HandleFunc("GET /api/staff", userH.ListStaff)

	// Cases
	mux.HandleFunc("POST /api/cases", caseH.Create)
	mux.HandleFunc("GET /api/cases", caseH.List)
	mux.HandleFunc("GET /api/cases/{id}", caseH.Get)
	mux.HandleFunc("PATCH /api/cases/{id}", caseH.Update)
	mux.HandleFunc("POST /api/cases/{id}/evidence", caseH.CreateEvidence)
	mux.HandleFunc("GET /api/cases/{id}/evidence", caseH.ListEvidence)
	mux.HandleFunc("POST /api/cases/{id}/appeals", caseH.CreateAppeal)
	mux.HandleFunc("GET /api/cases/{id}/appeals", caseH.ListAppeals)
	mux.HandleFunc("POST /api/cases/{id}/updates", caseH.CreateUpdate)
	mux.HandleFunc("GET /api/cases/{id}/updates", caseH.ListUpdates)

	// Contact and password resets
	mux.HandleFunc("POST /api/contact", contactH.CreateMessage)
	mux.HandleFunc("GET /api/contact", contactH.ListMessages)
	mux.HandleFunc("POST /api/password-resets", contactH.CreatePasswordReset)
	mux.HandleFunc("GET /api/password-resets", contactH.ListPasswordResets)
	mux.HandleFunc("PATCH /api/password-resets/{id}", contactH.UpdatePasswordReset)

	// Staff operations
	mux.HandleFunc("POST /api/staff-assignments", staffH.CreateAssignment)
	mux.HandleFunc("GET /api/staff-assignments", staffH.ListAssignments)
	mux.HandleFunc("PATCH /api/staff-assignments/{id}", staffH.UpdateAssignment)
	mux.HandleFunc("POST /api/staff-permissions", staffH.CreatePermission)
	mux.HandleFunc("GET /api/staff-permissions", staffH.ListPermissions)
	mux.HandleFunc("POST /api/staff-performance", staffH.CreatePerformance)
	mux.HandleFunc("GET /api/staff-performance", staffH.ListPerformance)
	mux.HandleFunc("POST /api/tribunal-proceedings", staffH.CreateProceeding)
	mux.HandleFunc("GET /api/tribunal-proceedings", staffH.ListProceedings)
	mux.HandleFunc("PATCH /api/tribunal-proceedings/{id}", staffH.UpdateProceeding)

	// Community
	mux.HandleFunc("POST /api/vouches", commH.CreateVouch)
	mux.HandleFunc("GET /api/users/{id}/vouches", commH.ListVouches)
	mux.HandleFunc("POST /api/disputes", commH.CreateDispute)
	mux.HandleFunc("GET /api/disputes/active", commH.ListActiveDisputes)
	mux.HandleFunc("POST /api/disputes/{id}/votes", commH.CreateVote)
	mux.HandleFunc("POST /api/reputation", commH.CreateReputation)
	mux.HandleFunc("GET /api/users/{id}/reputation", commH.GetReputation)

	// Alt detection
	mux.HandleFunc("POST /api/alt-accounts", altH.CreateAccount)
	mux.HandleFunc("GET /api/users/{id}/alt-accounts", altH.ListAccounts)
	mux.HandleFunc("POST /api/alt-detection-reports", altH.CreateReport)
	mux.HandleFunc("GET /api/alt-detection-reports", altH.ListReports)
	mux.HandleFunc("PATCH /api/alt-detection-reports/{id}", altH.UpdateReport)

	// Security
	mux.HandleFunc("POST /api/sessions", secH.CreateSession)
	mux.HandleFunc("GET /api/sessions", secH.ListSessions)
	mux.HandleFunc("POST /api/security-events", secH.CreateEvent)
	mux.HandleFunc("GET /api/security-events", secH.ListEvents)
	mux.HandleFunc("POST /api/audit-logs", secH.CreateAuditLog)
	mux.HandleFunc("GET /api/audit-logs", secH.ListAuditLogs)
	mux.HandleFunc("POST /api/verification-requests", secH.CreateVerificationRequest)
	mux.HandleFunc("GET /api/verification-requests", secH.ListVerificationRequests)

	// Knowledge base
	mux.HandleFunc("POST /api/utility-categories", utilH.CreateCategory)
	mux.HandleFunc("GET /api/utility-categories", utilH.ListCategories)
	mux.HandleFunc("POST /api/utility-documents", utilH.CreateDocument)
	mux.HandleFunc("GET /api/utility-documents", utilH.ListDocuments)
	mux.HandleFunc("PATCH /api/utility-documents/{id}", utilH.UpdateDocument)
	mux.HandleFunc("POST /api/utility-documents/{id}/ratings", utilH.CreateRating)

	// AI tools
	mux.HandleFunc("POST /api/ai-tool-categories", aiH.CreateCategory)
	mux.HandleFunc("GET /api/ai-tool-categories", aiH.ListCategories)
	mux.HandleFunc("POST /api/ai-tools", aiH.CreateTool)
	mux.HandleFunc("GET /api/ai-tools", aiH.ListTools)
	mux.HandleFunc("GET /api/ai-tools/{id}", aiH.GetTool)
	mux.HandleFunc("POST /api/ai-tools/{id}/usage", aiH.CreateUsage)
	mux.HandleFunc("PATCH /api/ai-tool-usage/{id}", aiH.UpdateUsage)
	mux.HandleFunc("POST /api/ai-tools/{id}/ratings", aiH.CreateRating)

	// Marketplace
	mux.HandleFunc("POST /api/freelancer-profiles", freeH.CreateProfile)
	mux.HandleFunc("GET /api/freelancer-profiles", freeH.ListProfiles)
	mux.HandleFunc("GET /api/freelancer-profiles/{userId}", freeH.GetProfile)
	mux.HandleFunc("PATCH /api/freelancer-profiles/{userId}", freeH.UpdateProfile)
	mux.HandleFunc("POST /api/projects", freeH.CreateProject)
	mux.HandleFunc("GET /api/projects", freeH.ListProjects)
	mux.HandleFunc("GET /api/projects/{id}", freeH.GetProject)
	mux.HandleFunc("PATCH /api/projects/{id}", freeH.UpdateProject)
	mux.HandleFunc("POST /api/projects/{id}/applications", freeH.CreateApplication)
	mux.HandleFunc("GET /api/projects/{id}/applications", freeH.ListApplications)
	mux.HandleFunc("POST /api/projects/{id}/reviews", freeH.CreateReview)

	// Collaboration
	mux.HandleFunc("POST /api/collaboration-spaces", collabH.CreateSpace)
	mux.HandleFunc("GET /api/collaboration-spaces", collabH.ListSpaces)
	mux.HandleFunc("GET /api/collaboration-spaces/{id}", collabH.GetSpace)
	mux.HandleFunc("POST /api/collaboration-spaces/{id}/members", collabH.CreateMember)
	mux.HandleFunc("POST /api/collaboration-spaces/{id}/tasks", collabH.CreateTask)
	mux.HandleFunc("GET /api/collaboration-spaces/{id}/tasks", collabH.ListTasks)
	mux.HandleFunc("POST /api/collaboration-spaces/{id}/messages", collabH.CreateMessage)
	mux.HandleFunc("GET /api/collaboration-spaces/{id}/messages", collabH.ListMessages)

	// Dashboard
	mux.HandleFunc("GET /api/dashboard/stats", dashH.Stats)

	// Operational
	mux.HandleFunc("GET /health", healthH.Health)
	mux.HandleFunc("GET /health/live", healthH.Live)
	mux.HandleFunc("GET /health/ready", healthH.Ready)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
