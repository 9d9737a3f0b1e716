package model

import "time"

// Project is a completed job showcased in the gallery with before/after
// imagery. The image key is the canonical storage-object reference; the URL
// is the derived access pointer served to browsers.
type Project struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ProjectType     string     `json:"projectType"` // "kitchen" | "bathroom"
	ServiceCategory string     `json:"serviceCategory"`
	Location        string     `json:"location,omitempty"`
	BeforeImageURL  string     `json:"beforeImageUrl"`
	BeforeImageKey  string     `json:"beforeImageKey"`
	AfterImageURL   string     `json:"afterImageUrl"`
	AfterImageKey   string     `json:"afterImageKey"`
	CompletionDate  *time.Time `json:"completionDate,omitempty"`
	Featured        bool       `json:"featured"` // shown on the homepage
	DisplayOrder    int        `json:"displayOrder"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ProjectUpdate is a partial field set for updating a gallery entry.
// Nil means "leave unchanged".
type ProjectUpdate struct {
	Title           *string
	Description     *string
	ProjectType     *string
	ServiceCategory *string
	Location        *string
	BeforeImageURL  *string
	BeforeImageKey  *string
	AfterImageURL   *string
	AfterImageKey   *string
	CompletionDate  *time.Time
	Featured        *bool
	DisplayOrder    *int
}

// ProjectListOptions carries the filter parameters for listing gallery
// projects. Results are always ordered by display_order ascending.
type ProjectListOptions struct {
	// FeaturedOnly limits the list to projects flagged for the homepage.
	FeaturedOnly bool
}
