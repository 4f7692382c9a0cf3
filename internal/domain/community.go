package domain

import "time"

// Vouch is a positive or negative trust statement about a user.
type Vouch struct {
	ID            string     `json:"id"`
	VoucherUserID string     `json:"voucherUserId"`
	TargetUserID  string     `json:"targetUserId"`
	Type          string     `json:"type"`
	Reason        string     `json:"reason"`
	Evidence      *string    `json:"evidence"`
	Weight        int        `json:"weight"`
	IsAnonymous   bool       `json:"isAnonymous"`
	ExpiresAt     *time.Time `json:"expiresAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// VouchParams is the partial input for creating a vouch.
type VouchParams struct {
	VoucherUserID *string    `json:"voucherUserId"`
	TargetUserID  *string    `json:"targetUserId"`
	Type          *string    `json:"type"`
	Reason        *string    `json:"reason"`
	Evidence      *string    `json:"evidence"`
	Weight        *int       `json:"weight"`
	IsAnonymous   *bool      `json:"isAnonymous"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}

// DisputeResolution is a community-voted dispute.
type DisputeResolution struct {
	ID              string     `json:"id"`
	CaseID          *string    `json:"caseId"`
	InitiatorUserID string     `json:"initiatorUserId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	IsPublic        bool       `json:"isPublic"`
	VotingStartDate time.Time  `json:"votingStartDate"`
	VotingEndDate   *time.Time `json:"votingEndDate"`
	MinimumVotes    int        `json:"minimumVotes"`
	Status          string     `json:"status"`
	FinalDecision   *string    `json:"finalDecision"`
	Implementation  *string    `json:"implementation"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// DisputeResolutionParams is the partial input for opening a dispute.
type DisputeResolutionParams struct {
	CaseID          *string    `json:"caseId"`
	InitiatorUserID *string    `json:"initiatorUserId"`
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	IsPublic        *bool      `json:"isPublic"`
	VotingStartDate *time.Time `json:"votingStartDate"`
	VotingEndDate   *time.Time `json:"votingEndDate"`
	MinimumVotes    *int       `json:"minimumVotes"`
	Status          *string    `json:"status"`
	FinalDecision   *string    `json:"finalDecision"`
	Implementation  *string    `json:"implementation"`
}

// DisputeVote is a single community vote on a dispute.
type DisputeVote struct {
	ID          string    `json:"id"`
	DisputeID   string    `json:"disputeId"`
	VoterUserID string    `json:"voterUserId"`
	Vote        string    `json:"vote"`
	Reason      *string   `json:"reason"`
	Weight      int       `json:"weight"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DisputeVoteParams is the partial input for casting a vote.
type DisputeVoteParams struct {
	DisputeID   *string `json:"disputeId"`
	VoterUserID *string `json:"voterUserId"`
	Vote        *string `json:"vote"`
	Reason      *string `json:"reason"`
	Weight      *int    `json:"weight"`
}

// UserReputation is the computed standing of a user in the community.
type UserReputation struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	ReputationScore   int       `json:"reputationScore"`
	VerificationLevel int       `json:"verificationLevel"`
	VouchesReceived   int       `json:"vouchesReceived"`
	DevouchesReceived int       `json:"devouchesReceived"`
	CasesReported     int       `json:"casesReported"`
	ValidReports      int       `json:"validReports"`
	FalseReports      int       `json:"falseReports"`
	CommunityScore    int       `json:"communityScore"`
	TrustLevel        string    `json:"trustLevel"`
	LastCalculated    time.Time `json:"lastCalculated"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// UserReputationParams is the partial input for a reputation record.
type UserReputationParams struct {
	UserID            *string `json:"userId"`
	ReputationScore   *int    `json:"reputationScore"`
	VerificationLevel *int    `json:"verificationLevel"`
	VouchesReceived   *int    `json:"vouchesReceived"`
	DevouchesReceived *int    `json:"devouchesReceived"`
	CasesReported     *int    `json:"casesReported"`
	ValidReports      *int    `json:"validReports"`
	FalseReports      *int    `json:"falseReports"`
	CommunityScore    *int    `json:"communityScore"`
	TrustLevel        *string `json:"trustLevel"`
}
