package domain

import "time"

// AiToolCategory groups AI assistant tools by purpose and audience.
type AiToolCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	TargetRole  *string   `json:"targetRole"`
	IsActive    bool      `json:"isActive"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AiToolCategoryParams is the partial input for a tool category.
type AiToolCategoryParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	TargetRole  *string `json:"targetRole"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder"`
}

// AiTool is a configured AI assistant with an input form definition.
type AiTool struct {
	ID           string         `json:"id"`
	CategoryID   string         `json:"categoryId"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Instructions string         `json:"instructions"`
	InputFields  map[string]any `json:"inputFields"`
	OutputFormat string         `json:"outputFormat"`
	RequiredRole string         `json:"requiredRole"`
	UsageCount   int            `json:"usageCount"`
	Rating       *float64       `json:"rating"`
	IsActive     bool           `json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// AiToolParams is the partial input for registering a tool.
type AiToolParams struct {
	CategoryID   *string        `json:"categoryId"`
	Name         *string        `json:"name"`
	Description  *string        `json:"description"`
	Instructions *string        `json:"instructions"`
	InputFields  map[string]any `json:"inputFields"`
	OutputFormat *string        `json:"outputFormat"`
	RequiredRole *string        `json:"requiredRole"`
	UsageCount   *int           `json:"usageCount"`
	Rating       *float64       `json:"rating"`
	IsActive     *bool          `json:"isActive"`
}

// AiToolUsage is one invocation of a tool by a user.
type AiToolUsage struct {
	ID             string         `json:"id"`
	ToolID         string         `json:"toolId"`
	UserID         string         `json:"userId"`
	InputData      map[string]any `json:"inputData"`
	OutputData     *string        `json:"outputData"`
	Status         string         `json:"status"`
	ErrorMessage   *string        `json:"errorMessage"`
	ProcessingTime *int           `json:"processingTime"`
	Rating         *int           `json:"rating"`
	Feedback       *string        `json:"feedback"`
	CreatedAt      time.Time      `json:"createdAt"`
	CompletedAt    *time.Time     `json:"completedAt"`
}

// AiToolUsageParams is the partial input for a usage record.
type AiToolUsageParams struct {
	ToolID         *string        `json:"toolId"`
	UserID         *string        `json:"userId"`
	InputData      map[string]any `json:"inputData"`
	OutputData     *string        `json:"outputData"`
	Status         *string        `json:"status"`
	ErrorMessage   *string        `json:"errorMessage"`
	ProcessingTime *int           `json:"processingTime"`
	Rating         *int           `json:"rating"`
	Feedback       *string        `json:"feedback"`
}

// AiToolRating is a user's rating of a tool.
type AiToolRating struct {
	ID                     string    `json:"id"`
	ToolID                 string    `json:"toolId"`
	UserID                 string    `json:"userId"`
	Rating                 int       `json:"rating"`
	Review                 *string   `json:"review"`
	IsHelpful              *bool     `json:"isHelpful"`
	ImprovementSuggestions *string   `json:"improvementSuggestions"`
	CreatedAt              time.Time `json:"createdAt"`
}

// AiToolRatingParams is the partial input for rating a tool.
type AiToolRatingParams struct {
	ToolID                 *string `json:"toolId"`
	UserID                 *string `json:"userId"`
	Rating                 *int    `json:"rating"`
	Review                 *string `json:"review"`
	IsHelpful              *bool   `json:"isHelpful"`
	ImprovementSuggestions *string `json:"improvementSuggestions"`
}
