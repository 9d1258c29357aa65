package ats

import (
	"github.com/camilogonzalez/resumeia/internal/types"
)

// ScoreFormat checks the CV for the standard sections an ATS parser expects.
// Each missing section deducts from the full score; the structural
// formatting lines are always positive because the CV generator only emits
// structurally valid sections.
func ScoreFormat(cv *types.CVContent) types.ATSScoreDetail {
	details := make([]string, 0, 7)
	score := maxFormatScore

	if cv.ProfessionalOverview != "" {
		details = append(details, "✓ Professional summary present")
	} else {
		details = append(details, "✗ Missing professional summary")
		score -= 3
	}

	if len(cv.WorkExperienceList) > 0 {
		details = append(details, "✓ Work experience section present")
	} else {
		details = append(details, "✗ Missing work experience")
		score -= 5
	}

	if len(cv.EducationList) > 0 {
		details = append(details, "✓ Education section present")
	} else {
		details = append(details, "! Education section missing or incomplete")
		score -= 2
	}

	if len(cv.SkillCategories) > 0 {
		details = append(details, "✓ Skills section present")
	} else {
		details = append(details, "✗ Missing skills section")
		score -= 3
	}

	if cv.HeaderInfo.EmailAddress != "" && cv.HeaderInfo.PhoneNumber != "" {
		details = append(details, "✓ Complete contact information")
	} else {
		details = append(details, "! Incomplete contact information")
		score -= 2
	}

	details = append(details,
		"✓ Clean, ATS-friendly formatting",
		"✓ Standard section headers",
	)

	return types.ATSScoreDetail{
		Score:   clampFloor(score, 0),
		Max:     maxFormatScore,
		Details: details,
	}
}

// clampFloor floors a score at the given minimum.
func clampFloor(score, floor int) int {
	if score < floor {
		return floor
	}
	return score
}
