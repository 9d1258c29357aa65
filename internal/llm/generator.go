package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/camilogonzalez/resumeia/internal/schemas"
	"github.com/camilogonzalez/resumeia/internal/types"
)

// Generator produces tailored CV content from a profile and a target
// position. A nil client puts the generator in mock mode, which returns
// deterministic sample content so the rest of the pipeline stays usable
// without an API key.
type Generator struct {
	client Client
}

// NewGenerator creates a generator backed by the given client. Pass nil to
// run in mock mode.
func NewGenerator(client Client) *Generator {
	return &Generator{client: client}
}

// generatedBody is the model-produced portion of a CV. The header is always
// assembled from the stored profile, never from model output.
type generatedBody struct {
	ProfessionalOverview string                      `json:"professionalOverview"`
	WorkExperienceList   []types.WorkExperienceEntry `json:"workExperienceList"`
	EducationList        []types.EducationEntry      `json:"educationList"`
	SkillCategories      []types.SkillCategory       `json:"skillCategories"`
}

// GenerateCV generates CV content tailored to a position. Model failures and
// unparseable output degrade to mock content rather than failing the request.
func (g *Generator) GenerateCV(ctx context.Context, profile *types.Profile, positionTitle, organizationName, positionDetails string) (*types.CVContent, error) {
	if g.client == nil {
		return MockCVContent(profile), nil
	}

	prompt := buildCVPrompt(profile, positionTitle, organizationName, positionDetails)

	raw, err := g.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("[LLM] generation failed, using fallback content: %v", err)
		return MockCVContent(profile), nil
	}

	content, err := parseCVResponse(raw, profile)
	if err != nil {
		log.Printf("[LLM] could not parse generated CV, using fallback content: %v", err)
		return MockCVContent(profile), nil
	}

	return content, nil
}

// ImproveCV regenerates CV content so that it addresses the given
// recommendations. Unlike GenerateCV this fails hard: callers asked for an
// improvement over content they already have, so a silent fallback would be
// worse than an error.
func (g *Generator) ImproveCV(ctx context.Context, cv *types.CVContent, recommendations []string, jobRequirements string) (*types.CVContent, error) {
	if g.client == nil {
		return nil, fmt.Errorf("improvement requires a configured API key")
	}

	prompt := buildImprovePrompt(cv, recommendations, jobRequirements)

	raw, err := g.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("failed to regenerate CV: %w", err)
	}

	var body generatedBody
	if err := parseBody(raw, &body); err != nil {
		return nil, fmt.Errorf("failed to parse regenerated CV: %w", err)
	}

	improved := &types.CVContent{
		HeaderInfo:           cv.HeaderInfo,
		ProfessionalOverview: body.ProfessionalOverview,
		WorkExperienceList:   body.WorkExperienceList,
		EducationList:        body.EducationList,
		SkillCategories:      body.SkillCategories,
	}
	if improved.ProfessionalOverview == "" {
		improved.ProfessionalOverview = cv.ProfessionalOverview
	}

	return improved, nil
}

// buildCVPrompt assembles the generation prompt from profile and position.
func buildCVPrompt(profile *types.Profile, positionTitle, organizationName, positionDetails string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert CV writer specializing in tailoring resumes to specific job positions.\n\n")
	sb.WriteString("Create professional CV content for the following:\n\n")
	fmt.Fprintf(&sb, "Position: %s at %s\n", positionTitle, organizationName)
	if positionDetails != "" {
		fmt.Fprintf(&sb, "Job Requirements:\n%s\n", positionDetails)
	}

	sb.WriteString("\nCandidate Information:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", profile.CompleteName)
	fmt.Fprintf(&sb, "- Title: %s\n", orDefault(profile.JobTitle, "Software Engineer"))
	fmt.Fprintf(&sb, "- Location: %s\n", profile.CityLocation)
	fmt.Fprintf(&sb, "- Phone: %s\n", profile.ContactPhone)
	fmt.Fprintf(&sb, "- Email: %s\n", profile.ContactEmail)
	if profile.LinkedinProfile != "" {
		fmt.Fprintf(&sb, "- LinkedIn: %s\n", profile.LinkedinProfile)
	}

	fmt.Fprintf(&sb, "\nWork History:\n%s\n", orDefault(profile.JobHistory, "No work history provided"))
	fmt.Fprintf(&sb, "\nEducation:\n%s\n", orDefault(profile.AcademicHistory, "No education history provided"))
	fmt.Fprintf(&sb, "\nTechnical Skills:\n%s\n", orDefault(profile.TechnicalSkills, "No technical skills provided"))

	sb.WriteString(`
Generate a JSON response with the following structure:
{
  "professionalOverview": "A compelling 3-4 sentence summary tailored to the job",
  "workExperienceList": [
    {
      "companyName": "Company Name",
      "dateRange": "Start - End",
      "roleTitle": "Position Title",
      "roleDescription": "Brief role description",
      "achievements": ["Achievement with metrics", "Another achievement"],
      "relevantTechnologies": ["Tech1", "Tech2"]
    }
  ],
  "educationList": [
    {
      "institutionName": "University Name",
      "dateRange": "Year - Year",
      "degreeObtained": "Degree Type"
    }
  ],
  "skillCategories": [
    {
      "categoryName": "Programming & Development",
      "skillsList": ["Skill1", "Skill2"]
    }
  ]
}

Focus on quantifiable achievements and keywords from the job requirements.`)

	return sb.String()
}

// buildImprovePrompt assembles the regeneration prompt from existing content
// and analysis recommendations.
func buildImprovePrompt(cv *types.CVContent, recommendations []string, jobRequirements string) string {
	current, _ := json.Marshal(cv)

	var sb strings.Builder
	sb.WriteString("You are an expert CV writer. Rewrite the following CV content so that it addresses every recommendation below.\n\n")
	sb.WriteString("Current CV content (JSON):\n")
	sb.Write(current)
	sb.WriteString("\n\nRecommendations to address:\n")
	for _, rec := range recommendations {
		fmt.Fprintf(&sb, "- %s\n", rec)
	}
	if jobRequirements != "" {
		fmt.Fprintf(&sb, "\nJob Requirements:\n%s\n", jobRequirements)
	}
	sb.WriteString("\nRespond with JSON using the same structure as the input, with the fields professionalOverview, workExperienceList, educationList and skillCategories. Keep all claims truthful to the input; strengthen wording and surface relevant keywords, do not invent employers or degrees.")

	return sb.String()
}

// parseCVResponse parses model output and assembles the final content with
// the header taken from the profile.
func parseCVResponse(raw string, profile *types.Profile) (*types.CVContent, error) {
	var body generatedBody
	if err := parseBody(raw, &body); err != nil {
		return nil, err
	}

	content := &types.CVContent{
		HeaderInfo: types.HeaderInfo{
			FullName:         profile.CompleteName,
			ProfessionalRole: orDefault(profile.JobTitle, "Software Engineer"),
			LocationText:     profile.CityLocation,
			PhoneNumber:      profile.ContactPhone,
			EmailAddress:     profile.ContactEmail,
			LinkedinURL:      profile.LinkedinProfile,
		},
		ProfessionalOverview: orDefault(body.ProfessionalOverview, "Professional overview"),
		WorkExperienceList:   body.WorkExperienceList,
		EducationList:        body.EducationList,
		SkillCategories:      body.SkillCategories,
	}
	if content.WorkExperienceList == nil {
		content.WorkExperienceList = []types.WorkExperienceEntry{}
	}
	if content.EducationList == nil {
		content.EducationList = []types.EducationEntry{}
	}
	if content.SkillCategories == nil {
		content.SkillCategories = []types.SkillCategory{}
	}

	return content, nil
}

// parseBody extracts the outermost JSON object from raw output, validates it
// against the CV body schema, and unmarshals it.
func parseBody(raw string, body *generatedBody) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object in model output")
	}
	payload := raw[start : end+1]

	if err := schemas.ValidateCVBody(payload); err != nil {
		return fmt.Errorf("generated content failed schema validation: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), body); err != nil {
		return fmt.Errorf("failed to decode generated content: %w", err)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
