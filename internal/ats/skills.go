package ats

import (
	"strings"

	"github.com/camilogonzalez/resumeia/internal/types"
)

// ScoreSkills rates the skills section: breadth, category organization, and
// overlap with the job keywords. An empty section scores zero outright.
func ScoreSkills(cv *types.CVContent, jobKeywords []string) types.ATSScoreDetail {
	if len(cv.SkillCategories) == 0 {
		return types.ATSScoreDetail{
			Score:   0,
			Max:     maxSkillsScore,
			Details: []string{"✗ No skills section present"},
		}
	}

	details := make([]string, 0, 3)
	score := maxSkillsScore

	var allSkills []string
	for _, category := range cv.SkillCategories {
		allSkills = append(allSkills, category.SkillsList...)
	}

	if len(allSkills) >= 10 {
		details = append(details, "✓ Comprehensive skills list")
	} else {
		details = append(details, "! Add more skills to improve ATS match")
		score -= 3
	}

	if len(cv.SkillCategories) >= 3 {
		details = append(details, "✓ Skills well organized into categories")
	} else {
		details = append(details, "! Consider organizing skills into categories")
		score -= 2
	}

	if len(jobKeywords) > 0 {
		skillsText := strings.ToLower(strings.Join(allSkills, " "))
		matched := 0
		for _, keyword := range jobKeywords {
			if strings.Contains(skillsText, strings.ToLower(keyword)) {
				matched++
			}
		}
		if float64(matched) >= float64(len(jobKeywords))*0.5 {
			details = append(details, "✓ Good match with required skills")
		} else {
			details = append(details, "! Add more job-required skills")
			score -= 4
		}
	}

	return types.ATSScoreDetail{
		Score:   clampFloor(score, 0),
		Max:     maxSkillsScore,
		Details: details,
	}
}
