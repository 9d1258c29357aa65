package ats

import (
	"testing"

	"github.com/camilogonzalez/resumeia/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreSkills_EmptyCategoriesScoresZero(t *testing.T) {
	detail := ScoreSkills(emptyCV(), nil)

	assert.Equal(t, 0, detail.Score)
	assert.Equal(t, []string{"✗ No skills section present"}, detail.Details)
}

func TestScoreSkills_FullMarks(t *testing.T) {
	detail := ScoreSkills(completeCV(), nil)

	assert.Equal(t, maxSkillsScore, detail.Score)
}

func TestScoreSkills_TooFewSkills(t *testing.T) {
	cv := completeCV()
	cv.SkillCategories = []types.SkillCategory{
		{CategoryName: "Languages", SkillsList: []string{"Go", "Python"}},
		{CategoryName: "Infrastructure", SkillsList: []string{"Docker"}},
		{CategoryName: "Practices", SkillsList: []string{"Agile"}},
	}

	detail := ScoreSkills(cv, nil)

	assert.Equal(t, maxSkillsScore-3, detail.Score)
	assert.Contains(t, detail.Details, "! Add more skills to improve ATS match")
}

func TestScoreSkills_TooFewCategories(t *testing.T) {
	cv := completeCV()
	cv.SkillCategories = []types.SkillCategory{
		{CategoryName: "Everything", SkillsList: []string{
			"Go", "Python", "TypeScript", "SQL", "Docker",
			"Kubernetes", "AWS", "Terraform", "Agile", "Mentoring",
		}},
	}

	detail := ScoreSkills(cv, nil)

	assert.Equal(t, maxSkillsScore-2, detail.Score)
	assert.Contains(t, detail.Details, "! Consider organizing skills into categories")
}

func TestScoreSkills_KeywordCoverageAtLeastHalf(t *testing.T) {
	// React and AWS both appear verbatim in skills; 2/2 >= 0.5 so no -4.
	cv := completeCV()
	cv.SkillCategories[1].SkillsList = append(cv.SkillCategories[1].SkillsList, "React")

	detail := ScoreSkills(cv, []string{"React", "AWS"})

	assert.Equal(t, maxSkillsScore, detail.Score)
	assert.Contains(t, detail.Details, "✓ Good match with required skills")
}

func TestScoreSkills_KeywordCoverageBelowHalf(t *testing.T) {
	detail := ScoreSkills(completeCV(), []string{"Erlang", "Haskell", "OCaml", "Go"})

	assert.Equal(t, maxSkillsScore-4, detail.Score)
	assert.Contains(t, detail.Details, "! Add more job-required skills")
}
