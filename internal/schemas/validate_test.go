package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"professionalOverview": "Seasoned engineer focused on data platforms.",
	"workExperienceList": [
		{
			"companyName": "Acme Corp",
			"dateRange": "2020 - Present",
			"roleTitle": "Staff Engineer",
			"roleDescription": "Owns the ingestion pipeline",
			"achievements": ["Cut costs by 30%"],
			"relevantTechnologies": ["Go", "PostgreSQL"]
		}
	],
	"educationList": [
		{"institutionName": "State University", "dateRange": "2012 - 2016", "degreeObtained": "B.S."}
	],
	"skillCategories": [
		{"categoryName": "Backend", "skillsList": ["Go", "Kafka"]}
	]
}`

func TestValidateCVBody_Valid(t *testing.T) {
	assert.NoError(t, ValidateCVBody(validBody))
}

func TestValidateCVBody_MissingOverview(t *testing.T) {
	err := ValidateCVBody(`{"workExperienceList": [], "educationList": [], "skillCategories": []}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateCVBody_WrongFieldType(t *testing.T) {
	body := `{
		"professionalOverview": "ok",
		"workExperienceList": "not an array",
		"educationList": [],
		"skillCategories": []
	}`

	err := ValidateCVBody(body)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "workExperienceList", validationErr.Errors[0].Field)
}

func TestValidateCVBody_MalformedJSON(t *testing.T) {
	err := ValidateCVBody(`{"professionalOverview": `)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateCVContent_Valid(t *testing.T) {
	content := `{
		"headerInfo": {"fullName": "Camilo Gonzalez", "emailAddress": "camilo@example.com"},
		"professionalOverview": "Engineer.",
		"workExperienceList": [],
		"educationList": [],
		"skillCategories": []
	}`

	assert.NoError(t, ValidateCVContent(content))
}

func TestValidateCVContent_MissingHeader(t *testing.T) {
	err := ValidateCVContent(`{"professionalOverview": "Engineer."}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "headerInfo.fullName", Message: "is required"},
	}}

	assert.Contains(t, err.Error(), "headerInfo.fullName")
	assert.Contains(t, err.Error(), "is required")
}
