package domain

import "time"

// AltAccount links a primary account to a suspected or confirmed alt.
// Lookups resolve the relation from either endpoint.
type AltAccount struct {
	ID            string     `json:"id"`
	PrimaryUserID string     `json:"primaryUserId"`
	AltUserID     string     `json:"altUserId"`
	Evidence      *string    `json:"evidence"`
	VerifiedBy    *string    `json:"verifiedBy"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	VerifiedAt    *time.Time `json:"verifiedAt"`
}

// AltAccountParams is the partial input for recording an alt relation.
type AltAccountParams struct {
	PrimaryUserID *string `json:"primaryUserId"`
	AltUserID     *string `json:"altUserId"`
	Evidence      *string `json:"evidence"`
	VerifiedBy    *string `json:"verifiedBy"`
	IsActive      *bool   `json:"isActive"`
}

// AltDetectionReport is an automated or manual alt-account report.
type AltDetectionReport struct {
	ID                       string         `json:"id"`
	SuspectedAltUserID       string         `json:"suspectedAltUserId"`
	DetectionMethod          string         `json:"detectionMethod"`
	MainAccountUserID        *string        `json:"mainAccountUserId"`
	ReportedBy               *string        `json:"reportedBy"`
	Status                   string         `json:"status"`
	ReviewedBy               *string        `json:"reviewedBy"`
	ReviewNotes              *string        `json:"reviewNotes"`
	ActionTaken              *string        `json:"actionTaken"`
	Severity                 string         `json:"severity"`
	AutoGenerated            bool           `json:"autoGenerated"`
	FalsePositiveProbability *float64       `json:"falsePositiveProbability"`
	SimilarityMetrics        map[string]any `json:"similarityMetrics"`
	CreatedAt                time.Time      `json:"createdAt"`
	ReviewedAt               *time.Time     `json:"reviewedAt"`
}

// AltDetectionReportParams is the partial input for an alt-detection report.
type AltDetectionReportParams struct {
	SuspectedAltUserID       *string        `json:"suspectedAltUserId"`
	DetectionMethod          *string        `json:"detectionMethod"`
	MainAccountUserID        *string        `json:"mainAccountUserId"`
	ReportedBy               *string        `json:"reportedBy"`
	Status                   *string        `json:"status"`
	ReviewedBy               *string        `json:"reviewedBy"`
	ReviewNotes              *string        `json:"reviewNotes"`
	ActionTaken              *string        `json:"actionTaken"`
	Severity                 *string        `json:"severity"`
	AutoGenerated            *bool          `json:"autoGenerated"`
	FalsePositiveProbability *float64       `json:"falsePositiveProbability"`
	SimilarityMetrics        map[string]any `json:"similarityMetrics"`
	ReviewedAt               *time.Time     `json:"reviewedAt"`
}
