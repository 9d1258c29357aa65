package ats

import (
	"fmt"
)

// Thresholds below which a sub-score triggers improvement suggestions.
const (
	experienceRecommendThreshold = 20
	skillsRecommendThreshold     = 12
)

// maxKeywordSuggestions caps how many missing keywords get individual
// suggestions.
const maxKeywordSuggestions = 3

// Recommendations turns sub-scorer findings into an ordered list of
// suggestions: missing-keyword items first, then experience, then skills,
// then positive reinforcement only when nothing else applied. Order is
// significant and preserved.
func Recommendations(missing []string, experienceScore, skillsScore int) []string {
	recommendations := make([]string, 0)

	top := missing
	if len(top) > maxKeywordSuggestions {
		top = top[:maxKeywordSuggestions]
	}
	for _, keyword := range top {
		recommendations = append(recommendations,
			fmt.Sprintf("Add %q to your skills or experience if applicable", keyword))
	}

	if experienceScore < experienceRecommendThreshold {
		recommendations = append(recommendations,
			"Include more quantifiable achievements with metrics (%, $, numbers)",
			"Use stronger action verbs (Led, Architected, Implemented, Drove)",
			"Add more detailed role descriptions with key technologies",
		)
	}

	if skillsScore < skillsRecommendThreshold {
		recommendations = append(recommendations,
			"Expand your skills section with more relevant technologies",
			"Organize skills into clear categories for better ATS parsing",
		)
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Your resume looks good! Consider adding more specific metrics to achievements",
			"Keep your resume updated with latest technologies and accomplishments",
		)
	}

	return recommendations
}
