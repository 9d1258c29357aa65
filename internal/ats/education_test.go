package ats

import (
	"testing"

	"github.com/camilogonzalez/resumeia/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreEducation_EmptyListGetsPartialCredit(t *testing.T) {
	detail := ScoreEducation(emptyCV())

	assert.Equal(t, educationFloor, detail.Score)
	assert.Equal(t, maxEducationScore, detail.Max)
	assert.Equal(t, []string{"! Education section missing or incomplete"}, detail.Details)
}

func TestScoreEducation_CompleteEntry(t *testing.T) {
	detail := ScoreEducation(completeCV())

	assert.Equal(t, maxEducationScore, detail.Score)
}

func TestScoreEducation_MissingDegree(t *testing.T) {
	cv := completeCV()
	cv.EducationList[0].DegreeObtained = ""

	detail := ScoreEducation(cv)

	assert.Equal(t, 8, detail.Score)
	assert.Contains(t, detail.Details, "! Add degree information")
}

func TestScoreEducation_IncompleteEntryFloorsAtFive(t *testing.T) {
	cv := completeCV()
	cv.EducationList = []types.EducationEntry{{}}

	detail := ScoreEducation(cv)

	assert.Equal(t, educationFloor, detail.Score)
}

func TestScoreEducation_OnlyFirstEntryInspected(t *testing.T) {
	cv := completeCV()
	cv.EducationList = append(cv.EducationList, types.EducationEntry{})

	detail := ScoreEducation(cv)

	assert.Equal(t, maxEducationScore, detail.Score)
}
