package types

// ATSScoreDetail holds one sub-scorer's result: a bounded partial score and
// the human-readable detail lines that explain it. 0 <= Score <= Max always.
type ATSScoreDetail struct {
	Score   int      `json:"score"`
	Max     int      `json:"max"`
	Details []string `json:"details"`
}

// ATSBreakdown holds the five named sub-scores of an analysis.
type ATSBreakdown struct {
	KeywordMatch        ATSScoreDetail `json:"keywordMatch"`
	FormatScore         ATSScoreDetail `json:"formatScore"`
	ExperienceRelevance ATSScoreDetail `json:"experienceRelevance"`
	SkillsMatch         ATSScoreDetail `json:"skillsMatch"`
	Education           ATSScoreDetail `json:"education"`
}

// ATSKeywords partitions the extracted job keywords by whether they were
// found in the CV. Optional is a reserved extension point and is always
// empty.
type ATSKeywords struct {
	Found    []string `json:"found"`
	Missing  []string `json:"missing"`
	Optional []string `json:"optional"`
}

// ATSAnalysisResult is the full output of an ATS compatibility analysis.
// OverallScore equals the sum of the five breakdown scores and the five Max
// values sum to 100.
type ATSAnalysisResult struct {
	OverallScore    int          `json:"overallScore"`
	Breakdown       ATSBreakdown `json:"breakdown"`
	Keywords        ATSKeywords  `json:"keywords"`
	Recommendations []string     `json:"recommendations"`
}
