package ats

import (
	"regexp"
	"strings"

	"github.com/camilogonzalez/resumeia/internal/types"
)

// metricPattern matches quantifiable achievement evidence: percentages,
// dollar amounts, and bare or scaled numbers with an optional trailing plus.
// Emphasis markers around a number (e.g. **40%**) do not defeat it.
var metricPattern = regexp.MustCompile(`\d+%|\$\d+|\d+[kKmMbB]?\+?`)

// actionVerbs is the fixed vocabulary of strong achievement verbs, matched
// case-insensitively as substrings.
var actionVerbs = []string{
	"led", "architected", "implemented", "drove",
	"designed", "developed", "managed", "created",
}

// ScoreExperience rates the work experience section for ATS relevance:
// quantifiable metrics, action verbs, documented technologies, and
// substantial role descriptions. An empty section scores zero outright.
func ScoreExperience(cv *types.CVContent, jobKeywords []string) types.ATSScoreDetail {
	experiences := cv.WorkExperienceList
	if len(experiences) == 0 {
		return types.ATSScoreDetail{
			Score:   0,
			Max:     maxExperienceScore,
			Details: []string{"✗ No work experience listed"},
		}
	}

	details := make([]string, 0, 4)
	score := maxExperienceScore

	hasMetrics := false
	for _, exp := range experiences {
		if metricPattern.MatchString(strings.Join(exp.Achievements, " ")) {
			hasMetrics = true
			break
		}
	}
	if hasMetrics {
		details = append(details, "✓ Quantifiable achievements present")
	} else {
		details = append(details, "! Add more quantifiable achievements (%, $, numbers)")
		score -= 5
	}

	hasActionVerbs := false
	for _, exp := range experiences {
		achievementText := strings.ToLower(strings.Join(exp.Achievements, " "))
		for _, verb := range actionVerbs {
			if strings.Contains(achievementText, verb) {
				hasActionVerbs = true
				break
			}
		}
		if hasActionVerbs {
			break
		}
	}
	if hasActionVerbs {
		details = append(details, "✓ Strong action verbs used")
	} else {
		details = append(details, "! Include more action verbs (Led, Architected, Implemented)")
		score -= 3
	}

	// Technology alignment only matters when there is job context.
	if len(jobKeywords) > 0 {
		techCount := 0
		for _, exp := range experiences {
			techCount += len(exp.RelevantTechnologies)
		}
		if techCount >= 5 {
			details = append(details, "✓ Technologies well documented")
		} else {
			details = append(details, "! Add more relevant technologies")
			score -= 2
		}
	}

	hasDescriptions := true
	for _, exp := range experiences {
		if len(exp.RoleDescription) <= 20 {
			hasDescriptions = false
			break
		}
	}
	if hasDescriptions {
		details = append(details, "✓ Clear role descriptions provided")
	} else {
		details = append(details, "! Add detailed role descriptions")
		score -= 3
	}

	return types.ATSScoreDetail{
		Score:   clampFloor(score, 0),
		Max:     maxExperienceScore,
		Details: details,
	}
}
