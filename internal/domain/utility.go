package domain

import "time"

// UtilityCategory groups knowledge-base documents.
type UtilityCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UtilityCategoryParams is the partial input for a category.
type UtilityCategoryParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

// UtilityDocument is a knowledge-base document (guides, procedures...).
type UtilityDocument struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"categoryId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Description   *string   `json:"description"`
	Tags          []string  `json:"tags"`
	AuthorID      string    `json:"authorId"`
	LastEditedBy  *string   `json:"lastEditedBy"`
	Version       int       `json:"version"`
	IsPublic      bool      `json:"isPublic"`
	AccessLevel   string    `json:"accessLevel"`
	DownloadCount int       `json:"downloadCount"`
	Rating        *float64  `json:"rating"`
	RatingCount   int       `json:"ratingCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UtilityDocumentParams is the partial input for a document.
type UtilityDocumentParams struct {
	CategoryID    *string  `json:"categoryId"`
	Title         *string  `json:"title"`
	Content       *string  `json:"content"`
	Description   *string  `json:"description"`
	Tags          []string `json:"tags"`
	AuthorID      *string  `json:"authorId"`
	LastEditedBy  *string  `json:"lastEditedBy"`
	Version       *int     `json:"version"`
	IsPublic      *bool    `json:"isPublic"`
	AccessLevel   *string  `json:"accessLevel"`
	DownloadCount *int     `json:"downloadCount"`
	Rating        *float64 `json:"rating"`
	RatingCount   *int     `json:"ratingCount"`
}

// DocumentRating is a user's rating of a document.
type DocumentRating struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"documentId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	Review     *string   `json:"review"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DocumentRatingParams is the partial input for rating a document.
type DocumentRatingParams struct {
	DocumentID *string `json:"documentId"`
	UserID     *string `json:"userId"`
	Rating     *int    `json:"rating"`
	Review     *string `json:"review"`
}
