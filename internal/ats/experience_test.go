package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreExperience_EmptyListScoresZero(t *testing.T) {
	detail := ScoreExperience(emptyCV(), nil)

	assert.Equal(t, 0, detail.Score)
	assert.Equal(t, maxExperienceScore, detail.Max)
	assert.Equal(t, []string{"✗ No work experience listed"}, detail.Details)
}

func TestScoreExperience_FullMarksWithoutJobContext(t *testing.T) {
	detail := ScoreExperience(completeCV(), nil)

	assert.Equal(t, maxExperienceScore, detail.Score)
}

func TestScoreExperience_MetricInsideEmphasisMarkers(t *testing.T) {
	cv := completeCV()
	cv.WorkExperienceList[0].Achievements = []string{
		"Increased throughput by **40%** using Kubernetes",
	}

	detail := ScoreExperience(cv, nil)

	assert.Contains(t, detail.Details, "✓ Quantifiable achievements present")
}

func TestScoreExperience_MissingMetricsAndVerbs(t *testing.T) {
	cv := completeCV()
	cv.WorkExperienceList[0].Achievements = []string{
		"Responsible for the backend",
	}

	// -5 metrics, -3 verbs.
	detail := ScoreExperience(cv, nil)

	assert.Equal(t, maxExperienceScore-8, detail.Score)
	assert.Contains(t, detail.Details, "! Add more quantifiable achievements (%, $, numbers)")
	assert.Contains(t, detail.Details, "! Include more action verbs (Led, Architected, Implemented)")
}

func TestScoreExperience_DollarAmountCountsAsMetric(t *testing.T) {
	cv := completeCV()
	cv.WorkExperienceList[0].Achievements = []string{"Saved $2M annually"}

	detail := ScoreExperience(cv, nil)

	assert.Contains(t, detail.Details, "✓ Quantifiable achievements present")
}

func TestScoreExperience_TechnologyCheckOnlyWithJobContext(t *testing.T) {
	cv := completeCV()
	cv.WorkExperienceList[0].RelevantTechnologies = []string{"Go"}

	// Without keywords the technology count is not inspected.
	withoutContext := ScoreExperience(cv, nil)
	assert.Equal(t, maxExperienceScore, withoutContext.Score)

	// With keywords, fewer than 5 technologies deducts 2.
	withContext := ScoreExperience(cv, []string{"Go"})
	assert.Equal(t, maxExperienceScore-2, withContext.Score)
	assert.Contains(t, withContext.Details, "! Add more relevant technologies")
}

func TestScoreExperience_ShortRoleDescription(t *testing.T) {
	cv := completeCV()
	cv.WorkExperienceList[0].RoleDescription = "Backend work"

	detail := ScoreExperience(cv, nil)

	assert.Equal(t, maxExperienceScore-3, detail.Score)
	assert.Contains(t, detail.Details, "! Add detailed role descriptions")
}

func TestScoreExperience_NeverNegative(t *testing.T) {
	cv := completeCV()
	cv.WorkExperienceList[0].Achievements = nil
	cv.WorkExperienceList[0].RoleDescription = ""
	cv.WorkExperienceList[0].RelevantTechnologies = nil

	detail := ScoreExperience(cv, []string{"Go"})

	assert.GreaterOrEqual(t, detail.Score, 0)
	assert.LessOrEqual(t, detail.Score, maxExperienceScore)
}
