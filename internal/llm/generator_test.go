package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/camilogonzalez/resumeia/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns canned output without touching the network.
type stubClient struct {
	output string
	err    error
}

func (s *stubClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return s.output, s.err
}

func (s *stubClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return s.output, s.err
}

func (s *stubClient) GetModel(tier ModelTier) string { return "stub-model" }

func (s *stubClient) Close() error { return nil }

func testProfile() *types.Profile {
	return &types.Profile{
		CompleteName:    "Camilo Gonzalez",
		JobTitle:        "Backend Engineer",
		ContactPhone:    "+34 600 000 000",
		ContactEmail:    "camilo@example.com",
		CityLocation:    "Madrid, Spain",
		LinkedinProfile: "https://linkedin.com/in/camilogonzalez",
	}
}

const stubBody = `{
	"professionalOverview": "Backend engineer with a focus on payment systems.",
	"workExperienceList": [
		{
			"companyName": "Acme Corp",
			"dateRange": "2021 - Present",
			"roleTitle": "Backend Engineer",
			"roleDescription": "Owns the payments service end to end",
			"achievements": ["Reduced chargebacks by 15%"],
			"relevantTechnologies": ["Go", "PostgreSQL"]
		}
	],
	"educationList": [
		{"institutionName": "Universidad Complutense", "dateRange": "2013 - 2017", "degreeObtained": "B.S. in Computer Science"}
	],
	"skillCategories": [
		{"categoryName": "Backend", "skillsList": ["Go", "PostgreSQL", "Kafka"]}
	]
}`

func TestGenerateCV_NilClientReturnsMock(t *testing.T) {
	g := NewGenerator(nil)

	content, err := g.GenerateCV(context.Background(), testProfile(), "Backend Engineer", "Acme Corp", "")

	require.NoError(t, err)
	assert.Equal(t, "Camilo Gonzalez", content.HeaderInfo.FullName)
	assert.NotEmpty(t, content.WorkExperienceList)
	assert.NotEmpty(t, content.SkillCategories)
}

func TestGenerateCV_ParsesModelOutput(t *testing.T) {
	g := NewGenerator(&stubClient{output: stubBody})

	content, err := g.GenerateCV(context.Background(), testProfile(), "Backend Engineer", "Acme Corp", "Go and PostgreSQL required")

	require.NoError(t, err)
	assert.Equal(t, "Backend engineer with a focus on payment systems.", content.ProfessionalOverview)
	require.Len(t, content.WorkExperienceList, 1)
	assert.Equal(t, "Acme Corp", content.WorkExperienceList[0].CompanyName)

	// Header always comes from the profile, never from model output.
	assert.Equal(t, "Camilo Gonzalez", content.HeaderInfo.FullName)
	assert.Equal(t, "camilo@example.com", content.HeaderInfo.EmailAddress)
}

func TestGenerateCV_StripsSurroundingProse(t *testing.T) {
	g := NewGenerator(&stubClient{output: "Here is the CV:\n" + stubBody + "\nLet me know if you need changes."})

	content, err := g.GenerateCV(context.Background(), testProfile(), "Backend Engineer", "Acme Corp", "")

	require.NoError(t, err)
	assert.Equal(t, "Backend engineer with a focus on payment systems.", content.ProfessionalOverview)
}

func TestGenerateCV_InvalidOutputFallsBackToMock(t *testing.T) {
	g := NewGenerator(&stubClient{output: "I could not generate a CV."})

	content, err := g.GenerateCV(context.Background(), testProfile(), "Backend Engineer", "Acme Corp", "")

	require.NoError(t, err)
	assert.Equal(t, "Tech Innovations Corp", content.WorkExperienceList[0].CompanyName)
}

func TestGenerateCV_ClientErrorFallsBackToMock(t *testing.T) {
	g := NewGenerator(&stubClient{err: errors.New("quota exceeded")})

	content, err := g.GenerateCV(context.Background(), testProfile(), "Backend Engineer", "Acme Corp", "")

	require.NoError(t, err)
	assert.NotEmpty(t, content.WorkExperienceList)
}

func TestGenerateCV_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGenerator(&stubClient{err: context.Canceled})

	_, err := g.GenerateCV(ctx, testProfile(), "Backend Engineer", "Acme Corp", "")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestImproveCV_NilClientErrors(t *testing.T) {
	g := NewGenerator(nil)

	_, err := g.ImproveCV(context.Background(), MockCVContent(testProfile()), []string{"Add \"Go\" to your skills"}, "")

	assert.Error(t, err)
}

func TestImproveCV_KeepsHeader(t *testing.T) {
	g := NewGenerator(&stubClient{output: stubBody})
	original := MockCVContent(testProfile())

	improved, err := g.ImproveCV(context.Background(), original, []string{"Quantify achievements with specific metrics"}, "")

	require.NoError(t, err)
	assert.Equal(t, original.HeaderInfo, improved.HeaderInfo)
	assert.Equal(t, "Backend engineer with a focus on payment systems.", improved.ProfessionalOverview)
}

func TestImproveCV_ClientErrorPropagates(t *testing.T) {
	g := NewGenerator(&stubClient{err: errors.New("model unavailable")})

	_, err := g.ImproveCV(context.Background(), MockCVContent(testProfile()), []string{"Add metrics"}, "")

	assert.Error(t, err)
}

func TestBuildCVPrompt_IncludesPositionAndProfile(t *testing.T) {
	prompt := buildCVPrompt(testProfile(), "Backend Engineer", "Acme Corp", "Go required")

	assert.Contains(t, prompt, "Position: Backend Engineer at Acme Corp")
	assert.Contains(t, prompt, "Job Requirements:\nGo required")
	assert.Contains(t, prompt, "- Name: Camilo Gonzalez")
	assert.Contains(t, prompt, "- LinkedIn: https://linkedin.com/in/camilogonzalez")
	assert.Contains(t, prompt, `"professionalOverview"`)
}

func TestBuildCVPrompt_DefaultsForEmptyFields(t *testing.T) {
	profile := testProfile()
	profile.JobTitle = ""
	profile.JobHistory = ""

	prompt := buildCVPrompt(profile, "Backend Engineer", "Acme Corp", "")

	assert.Contains(t, prompt, "- Title: Software Engineer")
	assert.Contains(t, prompt, "No work history provided")
	assert.NotContains(t, prompt, "Job Requirements:")
}
