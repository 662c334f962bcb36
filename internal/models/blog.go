package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog post categories enforced by a CHECK constraint on blog_posts.
const (
	BlogCategoryAI       = "AI"
	BlogCategorySecurity = "Cybersecurity"
	BlogCategoryML       = "Machine Learning"
	BlogCategoryCareer   = "Career"
	BlogCategoryTutorial = "Tutorials"
)

// BlogCategories lists every valid blog post category.
var BlogCategories = []string{
	BlogCategoryAI,
	BlogCategorySecurity,
	BlogCategoryML,
	BlogCategoryCareer,
	BlogCategoryTutorial,
}

// IsValidBlogCategory reports whether c is a known blog category.
func IsValidBlogCategory(c string) bool {
	for _, v := range BlogCategories {
		if v == c {
			return true
		}
	}
	return false
}

// BlogPostDB represents a blog post record in the database.
// Read time and slug are presentation concerns derived at read time,
// not stored columns.
type BlogPostDB struct {
	PostID        uuid.UUID  `json:"id" db:"post_id"`                  // Primary key
	Title         string     `json:"title" db:"title"`                 // Post title
	Content       string     `json:"content" db:"content"`             // Full body
	Excerpt       string     `json:"excerpt" db:"excerpt"`             // Short excerpt
	CoverImageURL string     `json:"coverImageUrl" db:"cover_image_url"` // Cover image reference
	Categories    StringList `json:"categories" db:"categories"`       // Subset of BlogCategories
	Featured      bool       `json:"featured" db:"featured"`           // Featured flag
	AuthorID      uuid.UUID  `json:"authorId" db:"author_id"`          // FK to users
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// BlogFilter carries list filters and pagination for blog posts.
type BlogFilter struct {
	Category *string
	Featured *bool
	Page     int
	Limit    int
}
