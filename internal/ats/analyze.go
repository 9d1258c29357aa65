package ats

import (
	"strings"

	"github.com/camilogonzalez/resumeia/internal/types"
)

// Maximum scores per sub-scorer. The split is a policy decision: keyword
// coverage dominates, education weighs least. The five values sum to 100.
const (
	maxKeywordScore    = 30
	maxFormatScore     = 20
	maxExperienceScore = 25
	maxSkillsScore     = 15
	maxEducationScore  = 10
)

// Analyze runs the full ATS compatibility analysis: keyword extraction from
// the optional job requirement text, the five independent sub-scorers, and
// recommendation generation. It is a pure function of its inputs and never
// fails for structurally valid CV content; degenerate input (empty sections,
// missing fields) is scored, not rejected.
func Analyze(cv *types.CVContent, jobRequirements string) *types.ATSAnalysisResult {
	jobKeywords := ExtractKeywords(jobRequirements)

	keywordAnalysis := MatchKeywords(cv, jobKeywords)
	formatScore := ScoreFormat(cv)
	experienceScore := ScoreExperience(cv, jobKeywords)
	skillsScore := ScoreSkills(cv, jobKeywords)
	educationScore := ScoreEducation(cv)

	overall := keywordAnalysis.Score +
		formatScore.Score +
		experienceScore.Score +
		skillsScore.Score +
		educationScore.Score

	recommendations := Recommendations(
		keywordAnalysis.Missing,
		experienceScore.Score,
		skillsScore.Score,
	)

	return &types.ATSAnalysisResult{
		OverallScore: overall,
		Breakdown: types.ATSBreakdown{
			KeywordMatch: types.ATSScoreDetail{
				Score: keywordAnalysis.Score,
				Max:   maxKeywordScore,
				Details: []string{
					"Found: " + joinOrNone(keywordAnalysis.Found),
					"Missing: " + joinOrNone(keywordAnalysis.Missing),
				},
			},
			FormatScore:         formatScore,
			ExperienceRelevance: experienceScore,
			SkillsMatch:         skillsScore,
			Education:           educationScore,
		},
		Keywords: types.ATSKeywords{
			Found:   keywordAnalysis.Found,
			Missing: keywordAnalysis.Missing,
			// Reserved extension point; always empty until product intent
			// is clarified.
			Optional: []string{},
		},
		Recommendations: recommendations,
	}
}

// joinOrNone formats a keyword list for a detail line.
func joinOrNone(keywords []string) string {
	if len(keywords) == 0 {
		return "None"
	}
	return strings.Join(keywords, ", ")
}
