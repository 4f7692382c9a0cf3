package domain

import "time"

// UserSession records a device/browser session together with the
// fingerprint data used by alt detection.
type UserSession struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	IPAddress           string    `json:"ipAddress"`
	UserAgent           string    `json:"userAgent"`
	DeviceFingerprint   *string   `json:"deviceFingerprint"`
	IsActive            bool      `json:"isActive"`
	LastActivity        time.Time `json:"lastActivity"`
	ScreenResolution    *string   `json:"screenResolution"`
	Timezone            *string   `json:"timezone"`
	Language            *string   `json:"language"`
	Platform            *string   `json:"platform"`
	BrowserVersion      *string   `json:"browserVersion"`
	Plugins             []string  `json:"plugins"`
	Fonts               []string  `json:"fonts"`
	HardwareConcurrency *int      `json:"hardwareConcurrency"`
	DeviceMemory        *int      `json:"deviceMemory"`
	ConnectionType      *string   `json:"connectionType"`
	SuspiciousActivity  bool      `json:"suspiciousActivity"`
	RiskScore           int       `json:"riskScore"`
	CreatedAt           time.Time `json:"createdAt"`
}

// UserSessionParams is the partial input for recording a session.
type UserSessionParams struct {
	UserID              *string    `json:"userId"`
	IPAddress           *string    `json:"ipAddress"`
	UserAgent           *string    `json:"userAgent"`
	DeviceFingerprint   *string    `json:"deviceFingerprint"`
	IsActive            *bool      `json:"isActive"`
	LastActivity        *time.Time `json:"lastActivity"`
	ScreenResolution    *string    `json:"screenResolution"`
	Timezone            *string    `json:"timezone"`
	Language            *string    `json:"language"`
	Platform            *string    `json:"platform"`
	BrowserVersion      *string    `json:"browserVersion"`
	Plugins             []string   `json:"plugins"`
	Fonts               []string   `json:"fonts"`
	HardwareConcurrency *int       `json:"hardwareConcurrency"`
	DeviceMemory        *int       `json:"deviceMemory"`
	ConnectionType      *string    `json:"connectionType"`
	SuspiciousActivity  *bool      `json:"suspiciousActivity"`
	RiskScore           *int       `json:"riskScore"`
}

// SecurityEvent is a notable security occurrence (failed login, lockout...).
type SecurityEvent struct {
	ID          string     `json:"id"`
	EventType   string     `json:"eventType"`
	Description string     `json:"description"`
	UserID      *string    `json:"userId"`
	Severity    string     `json:"severity"`
	IPAddress   string     `json:"ipAddress"`
	UserAgent   *string    `json:"userAgent"`
	Resolved    bool       `json:"resolved"`
	ResolvedBy  *string    `json:"resolvedBy"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// SecurityEventParams is the partial input for a security event.
type SecurityEventParams struct {
	EventType   *string    `json:"eventType"`
	Description *string    `json:"description"`
	UserID      *string    `json:"userId"`
	Severity    *string    `json:"severity"`
	IPAddress   *string    `json:"ipAddress"`
	UserAgent   *string    `json:"userAgent"`
	Resolved    *bool      `json:"resolved"`
	ResolvedBy  *string    `json:"resolvedBy"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
}

// AuditLog is an immutable record of a mutating action.
type AuditLog struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	Action         string         `json:"action"`
	EntityType     string         `json:"entityType"`
	EntityID       *string        `json:"entityId"`
	OldValues      map[string]any `json:"oldValues"`
	NewValues      map[string]any `json:"newValues"`
	IPAddress      *string        `json:"ipAddress"`
	UserAgent      *string        `json:"userAgent"`
	AdditionalData map[string]any `json:"additionalData"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// AuditLogParams is the partial input for an audit entry.
type AuditLogParams struct {
	UserID         *string        `json:"userId"`
	Action         *string        `json:"action"`
	EntityType     *string        `json:"entityType"`
	EntityID       *string        `json:"entityId"`
	OldValues      map[string]any `json:"oldValues"`
	NewValues      map[string]any `json:"newValues"`
	IPAddress      *string        `json:"ipAddress"`
	UserAgent      *string        `json:"userAgent"`
	AdditionalData map[string]any `json:"additionalData"`
}

// VerificationRequest is a user's request for identity verification.
type VerificationRequest struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	VerificationType string     `json:"verificationType"`
	Evidence         *string    `json:"evidence"`
	Status           string     `json:"status"`
	ReviewedBy       *string    `json:"reviewedBy"`
	ReviewNotes      *string    `json:"reviewNotes"`
	ExpiresAt        *time.Time `json:"expiresAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	ReviewedAt       *time.Time `json:"reviewedAt"`
}

// VerificationRequestParams is the partial input for a verification request.
type VerificationRequestParams struct {
	UserID           *string    `json:"userId"`
	VerificationType *string    `json:"verificationType"`
	Evidence         *string    `json:"evidence"`
	Status           *string    `json:"status"`
	ReviewedBy       *string    `json:"reviewedBy"`
	ReviewNotes      *string    `json:"reviewNotes"`
	ExpiresAt        *time.Time `json:"expiresAt"`
}
