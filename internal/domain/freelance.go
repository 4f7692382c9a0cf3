package domain

import "time"

// FreelancerProfile is a marketplace profile owned by a user.
type FreelancerProfile struct {
	ID                string         `json:"id"`
	UserID            string         `json:"userId"`
	Title             string         `json:"title"`
	Bio               string         `json:"bio"`
	Skills            []string       `json:"skills"`
	IsVerified        bool           `json:"isVerified"`
	VerificationLevel string         `json:"verificationLevel"`
	Specializations   []string       `json:"specializations"`
	HourlyRate        *float64       `json:"hourlyRate"`
	Currency          string         `json:"currency"`
	Availability      string         `json:"availability"`
	Portfolio         map[string]any `json:"portfolio"`
	CompletedJobs     int            `json:"completedJobs"`
	AverageRating     *float64       `json:"averageRating"`
	TotalEarnings     string         `json:"totalEarnings"`
	ResponseTime      *string        `json:"responseTime"`
	Languages         []string       `json:"languages"`
	Timezone          *string        `json:"timezone"`
	IsActive          bool           `json:"isActive"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// FreelancerProfileParams is the partial input for a profile.
type FreelancerProfileParams struct {
	UserID            *string        `json:"userId"`
	Title             *string        `json:"title"`
	Bio               *string        `json:"bio"`
	Skills            []string       `json:"skills"`
	IsVerified        *bool          `json:"isVerified"`
	VerificationLevel *string        `json:"verificationLevel"`
	Specializations   []string       `json:"specializations"`
	HourlyRate        *float64       `json:"hourlyRate"`
	Currency          *string        `json:"currency"`
	Availability      *string        `json:"availability"`
	Portfolio         map[string]any `json:"portfolio"`
	CompletedJobs     *int           `json:"completedJobs"`
	AverageRating     *float64       `json:"averageRating"`
	TotalEarnings     *string        `json:"totalEarnings"`
	ResponseTime      *string        `json:"responseTime"`
	Languages         []string       `json:"languages"`
	Timezone          *string        `json:"timezone"`
	IsActive          *bool          `json:"isActive"`
}

// FreelancerFilter filters marketplace profile listings.
type FreelancerFilter struct {
	Skills   []string `json:"skills"`
	Verified *bool    `json:"verified"`
}

// Project is a client-posted job in the marketplace.
type Project struct {
	ID               string         `json:"id"`
	ClientID         string         `json:"clientId"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Skills           []string       `json:"skills"`
	FreelancerID     *string        `json:"freelancerId"`
	Budget           *float64       `json:"budget"`
	BudgetType       string         `json:"budgetType"`
	Currency         string         `json:"currency"`
	Deadline         *time.Time     `json:"deadline"`
	Status           string         `json:"status"`
	Priority         string         `json:"priority"`
	IsPublic         bool           `json:"isPublic"`
	IsVerifiedOnly   bool           `json:"isVerifiedOnly"`
	ApplicationCount int            `json:"applicationCount"`
	Attachments      []string       `json:"attachments"`
	EstimatedHours   *int           `json:"estimatedHours"`
	ActualHours      *int           `json:"actualHours"`
	Milestones       map[string]any `json:"milestones"`
	Tags             []string       `json:"tags"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	StartedAt        *time.Time     `json:"startedAt"`
	CompletedAt      *time.Time     `json:"completedAt"`
}

// ProjectParams is the partial input for creating or updating a project.
type ProjectParams struct {
	ClientID         *string        `json:"clientId"`
	Title            *string        `json:"title"`
	Description      *string        `json:"description"`
	Skills           []string       `json:"skills"`
	FreelancerID     *string        `json:"freelancerId"`
	Budget           *float64       `json:"budget"`
	BudgetType       *string        `json:"budgetType"`
	Currency         *string        `json:"currency"`
	Deadline         *time.Time     `json:"deadline"`
	Status           *string        `json:"status"`
	Priority         *string        `json:"priority"`
	IsPublic         *bool          `json:"isPublic"`
	IsVerifiedOnly   *bool          `json:"isVerifiedOnly"`
	ApplicationCount *int           `json:"applicationCount"`
	Attachments      []string       `json:"attachments"`
	EstimatedHours   *int           `json:"estimatedHours"`
	ActualHours      *int           `json:"actualHours"`
	Milestones       map[string]any `json:"milestones"`
	Tags             []string       `json:"tags"`
	StartedAt        *time.Time     `json:"startedAt"`
	CompletedAt      *time.Time     `json:"completedAt"`
}

// ProjectFilter filters project listings.
type ProjectFilter struct {
	Status   *string  `json:"status"`
	Skills   []string `json:"skills"`
	ClientID *string  `json:"clientId"`
}

// ProjectApplication is a freelancer's bid on a project.
type ProjectApplication struct {
	ID               string         `json:"id"`
	ProjectID        string         `json:"projectId"`
	FreelancerID     string         `json:"freelancerId"`
	CoverLetter      string         `json:"coverLetter"`
	ProposedBudget   *float64       `json:"proposedBudget"`
	ProposedTimeline *string        `json:"proposedTimeline"`
	Portfolio        map[string]any `json:"portfolio"`
	Status           string         `json:"status"`
	ClientNotes      *string        `json:"clientNotes"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ProjectApplicationParams is the partial input for an application.
type ProjectApplicationParams struct {
	ProjectID        *string        `json:"projectId"`
	FreelancerID     *string        `json:"freelancerId"`
	CoverLetter      *string        `json:"coverLetter"`
	ProposedBudget   *float64       `json:"proposedBudget"`
	ProposedTimeline *string        `json:"proposedTimeline"`
	Portfolio        map[string]any `json:"portfolio"`
	Status           *string        `json:"status"`
	ClientNotes      *string        `json:"clientNotes"`
}

// ProjectReview is a post-completion review between client and freelancer.
type ProjectReview struct {
	ID             string         `json:"id"`
	ProjectID      string         `json:"projectId"`
	ReviewerID     string         `json:"reviewerId"`
	RevieweeID     string         `json:"revieweeId"`
	Rating         int            `json:"rating"`
	Review         *string        `json:"review"`
	Skills         map[string]any `json:"skills"`
	WouldWorkAgain *bool          `json:"wouldWorkAgain"`
	IsPublic       bool           `json:"isPublic"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// ProjectReviewParams is the partial input for a review.
type ProjectReviewParams struct {
	ProjectID      *string        `json:"projectId"`
	ReviewerID     *string        `json:"reviewerId"`
	RevieweeID     *string        `json:"revieweeId"`
	Rating         *int           `json:"rating"`
	Review         *string        `json:"review"`
	Skills         map[string]any `json:"skills"`
	WouldWorkAgain *bool          `json:"wouldWorkAgain"`
	IsPublic       *bool          `json:"isPublic"`
}
