package models

import (
	"time"

	"github.com/google/uuid"
)

// Project categories accepted by the API and enforced by a CHECK
// constraint on the projects table.
const (
	ProjectCategoryAI            = "AI"
	ProjectCategoryCybersecurity = "Cybersecurity"
	ProjectCategoryWeb           = "Web Development"
	ProjectCategoryCloud         = "Cloud"
	ProjectCategoryResearch      = "Research"
)

// ProjectCategories lists every valid project category.
var ProjectCategories = []string{
	ProjectCategoryAI,
	ProjectCategoryCybersecurity,
	ProjectCategoryWeb,
	ProjectCategoryCloud,
	ProjectCategoryResearch,
}

// IsValidProjectCategory reports whether c is a known project category.
func IsValidProjectCategory(c string) bool {
	for _, v := range ProjectCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ProjectDB represents a project record in the database
type ProjectDB struct {
	ProjectID    uuid.UUID  `json:"id" db:"project_id"`              // Primary key
	Title        string     `json:"title" db:"title"`                // Project title
	Overview     string     `json:"overview" db:"overview"`          // Short overview
	Problem      string     `json:"problem" db:"problem"`            // Problem statement
	Features     StringList `json:"features" db:"features"`          // Feature list
	ImageURL     string     `json:"imageUrl" db:"image_url"`         // Cover image reference
	Technologies StringList `json:"technologies" db:"technologies"` // Non-empty technology list
	DemoURL      string     `json:"demoUrl" db:"demo_url"`           // External demo link
	CodeURL      string     `json:"codeUrl" db:"code_url"`           // Source code link
	Category     string     `json:"category" db:"category"`          // One of ProjectCategories
	Featured     bool       `json:"featured" db:"featured"`          // Featured flag
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// ProjectFilter carries list filters and pagination for projects.
type ProjectFilter struct {
	Category *string // nil means all categories
	Featured *bool   // nil means both
	Page     int
	Limit    int
}
