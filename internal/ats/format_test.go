package ats

import (
	"testing"

	"github.com/camilogonzalez/resumeia/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreFormat_CompleteCV(t *testing.T) {
	detail := ScoreFormat(completeCV())

	assert.Equal(t, maxFormatScore, detail.Score)
	assert.Equal(t, maxFormatScore, detail.Max)
}

func TestScoreFormat_MissingSections(t *testing.T) {
	// Contact info present, all sections absent: 20 - 5 - 2 - 3 = 10.
	detail := ScoreFormat(emptyCV())

	assert.Equal(t, 10, detail.Score)
}

func TestScoreFormat_MissingContact(t *testing.T) {
	cv := completeCV()
	cv.HeaderInfo.PhoneNumber = ""

	detail := ScoreFormat(cv)

	assert.Equal(t, maxFormatScore-2, detail.Score)
	assert.Contains(t, detail.Details, "! Incomplete contact information")
}

func TestScoreFormat_EverythingMissingFloorsAboveZero(t *testing.T) {
	cv := emptyCV()
	cv.ProfessionalOverview = ""
	cv.HeaderInfo.EmailAddress = ""

	// 20 - 3 - 5 - 2 - 3 - 2 = 5.
	detail := ScoreFormat(cv)

	assert.Equal(t, 5, detail.Score)
}

func TestScoreFormat_AlwaysAppendsStructuralLines(t *testing.T) {
	for _, cv := range []*types.CVContent{completeCV(), emptyCV()} {
		detail := ScoreFormat(cv)
		assert.Contains(t, detail.Details, "✓ Clean, ATS-friendly formatting")
		assert.Contains(t, detail.Details, "✓ Standard section headers")
	}
}
