package ats

import (
	"github.com/camilogonzalez/resumeia/internal/types"
)

// educationFloor is the minimum education score. Education is the lightest
// weighted section: a missing list still earns partial credit, and an
// incomplete first entry never drops below half. The asymmetry with the
// other sub-scorers (which floor at zero) is intentional and distinguishes
// "incomplete" from "absent".
const educationFloor = 5

// ScoreEducation rates the education section by completeness of the first
// entry only.
func ScoreEducation(cv *types.CVContent) types.ATSScoreDetail {
	if len(cv.EducationList) == 0 {
		return types.ATSScoreDetail{
			Score:   educationFloor,
			Max:     maxEducationScore,
			Details: []string{"! Education section missing or incomplete"},
		}
	}

	details := make([]string, 0, 3)
	score := maxEducationScore
	education := cv.EducationList[0]

	if education.DegreeObtained != "" {
		details = append(details, "✓ Degree information present")
	} else {
		details = append(details, "! Add degree information")
		score -= 2
	}

	if education.DateRange != "" {
		details = append(details, "✓ Dates included")
	} else {
		details = append(details, "! Add graduation dates")
		score -= 2
	}

	if education.InstitutionName != "" {
		details = append(details, "✓ Institution name provided")
	} else {
		details = append(details, "! Add institution name")
		score -= 2
	}

	return types.ATSScoreDetail{
		Score:   clampFloor(score, educationFloor),
		Max:     maxEducationScore,
		Details: details,
	}
}
