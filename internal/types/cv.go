// Package types provides type definitions for structured data used throughout the resumeia system.
package types

// HeaderInfo holds the contact block rendered at the top of a CV.
type HeaderInfo struct {
	FullName         string `json:"fullName"`
	ProfessionalRole string `json:"professionalRole"`
	LocationText     string `json:"locationText"`
	PhoneNumber      string `json:"phoneNumber"`
	EmailAddress     string `json:"emailAddress"`
	LinkedinURL      string `json:"linkedinUrl,omitempty"`
}

// WorkExperienceEntry represents one position in the work experience section.
type WorkExperienceEntry struct {
	CompanyName          string   `json:"companyName"`
	DateRange            string   `json:"dateRange"`
	RoleTitle            string   `json:"roleTitle"`
	RoleDescription      string   `json:"roleDescription"`
	Achievements         []string `json:"achievements"`
	RelevantTechnologies []string `json:"relevantTechnologies"`
}

// EducationEntry represents one entry in the education section.
type EducationEntry struct {
	InstitutionName string `json:"institutionName"`
	DateRange       string `json:"dateRange"`
	DegreeObtained  string `json:"degreeObtained"`
}

// SkillCategory groups related skills under a named category.
type SkillCategory struct {
	CategoryName string   `json:"categoryName"`
	SkillsList   []string `json:"skillsList"`
}

// CVContent is the structured, machine-readable representation of a resume
// prior to visual rendering. The professional overview may contain inline
// **bold** emphasis markers; they are semantic and are not stripped before
// analysis.
type CVContent struct {
	HeaderInfo           HeaderInfo            `json:"headerInfo"`
	ProfessionalOverview string                `json:"professionalOverview"`
	WorkExperienceList   []WorkExperienceEntry `json:"workExperienceList"`
	EducationList        []EducationEntry      `json:"educationList"`
	SkillCategories      []SkillCategory       `json:"skillCategories"`
}
