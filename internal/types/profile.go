package types

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a career profile for API responses.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	CompleteName    string    `json:"complete_name"`
	JobTitle        string    `json:"job_title,omitempty"`
	ContactPhone    string    `json:"contact_phone"`
	ContactEmail    string    `json:"contact_email"`
	CityLocation    string    `json:"city_location"`
	LinkedinProfile string    `json:"linkedin_profile,omitempty"`
	DisplayLinkedin bool      `json:"display_linkedin"`
	JobHistory      string    `json:"job_history,omitempty"`
	AcademicHistory string    `json:"academic_history,omitempty"`
	TechnicalSkills string    `json:"technical_skills,omitempty"`
	Template        string    `json:"template"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateProfileRequest represents the request to create or update a profile.
type CreateProfileRequest struct {
	CompleteName    string `json:"complete_name" validate:"required,min=1"`
	JobTitle        string `json:"job_title,omitempty"`
	ContactPhone    string `json:"contact_phone" validate:"required"`
	ContactEmail    string `json:"contact_email" validate:"required,email"`
	CityLocation    string `json:"city_location" validate:"required"`
	LinkedinProfile string `json:"linkedin_profile,omitempty"`
	DisplayLinkedin *bool  `json:"display_linkedin,omitempty"`
	JobHistory      string `json:"job_history,omitempty"`
	AcademicHistory string `json:"academic_history,omitempty"`
	TechnicalSkills string `json:"technical_skills,omitempty"`
	Template        string `json:"template,omitempty" validate:"omitempty,oneof=modern classic minimalist"`
}

// GenerateCVRequest represents the request to generate a tailored CV from a
// profile. PositionDetails carries the free-text job requirements; JobURL
// optionally points at a posting to fetch them from.
type GenerateCVRequest struct {
	PositionTitle    string `json:"position_title" validate:"required"`
	OrganizationName string `json:"organization_name" validate:"required"`
	JobURL           string `json:"job_url,omitempty" validate:"omitempty,url"`
	PositionDetails  string `json:"position_details,omitempty"`
	DisplayLinkedin  *bool  `json:"display_linkedin,omitempty"`
}

// GeneratedCV represents a stored generated CV for API responses.
type GeneratedCV struct {
	ID               uuid.UUID `json:"id"`
	ProfileID        uuid.UUID `json:"profile_id"`
	PositionTitle    string    `json:"position_title"`
	OrganizationName string    `json:"organization_name"`
	JobURL           string    `json:"job_url,omitempty"`
	PositionDetails  string    `json:"position_details,omitempty"`
	Content          CVContent `json:"content"`
	ShareToken       string    `json:"share_token,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// AnalyzeRequest is the boundary contract for ATS analysis: a required CV
// content structure plus optional free-text job requirements.
type AnalyzeRequest struct {
	CVContent       *CVContent `json:"cvContent"`
	JobRequirements string     `json:"jobRequirements,omitempty"`
}

// ImproveRequest asks for a regenerated CV that incorporates analysis
// recommendations.
type ImproveRequest struct {
	CVContent       *CVContent `json:"cvContent"`
	Recommendations []string   `json:"recommendations" validate:"required,min=1"`
	JobRequirements string     `json:"jobRequirements,omitempty"`
}

// LinkedinImportRequest carries manually pasted LinkedIn profile text.
type LinkedinImportRequest struct {
	ProfileText string `json:"profile_text" validate:"required,min=1"`
}
