package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ResumeKey is the fixed primary key of the singleton resume row.
// Uniqueness is enforced by the key itself rather than by convention.
const ResumeKey = "current"

// ResumeBasics holds name and contact details.
type ResumeBasics struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Email    string `json:"email,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// ResumeExperience is a single work-history entry.
type ResumeExperience struct {
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	Period      string   `json:"period,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// ResumeEducation is a single education entry.
type ResumeEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period,omitempty"`
}

// ResumeSkill groups related skills under a named category.
type ResumeSkill struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// ResumeLanguage is a spoken language and proficiency level.
type ResumeLanguage struct {
	Language string `json:"language"`
	Level    string `json:"level,omitempty"`
}

// ResumePayload aggregates every resume section into one JSONB column.
type ResumePayload struct {
	Basics         ResumeBasics       `json:"basics"`
	Experience     []ResumeExperience `json:"experience,omitempty"`
	Education      []ResumeEducation  `json:"education,omitempty"`
	Skills         []ResumeSkill      `json:"skills,omitempty"`
	Languages      []ResumeLanguage   `json:"languages,omitempty"`
	Interests      []string           `json:"interests,omitempty"`
	Publications   []string           `json:"publications,omitempty"`
	Certifications []string           `json:"certifications,omitempty"`
}

// Value implements driver.Valuer.
func (p ResumePayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *ResumePayload) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported source type for ResumePayload")
	}
}

// ResumeDB represents the singleton resume row.
type ResumeDB struct {
	ResumeKey string        `json:"-" db:"resume_key"`
	Payload   ResumePayload `json:"payload" db:"payload"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}
