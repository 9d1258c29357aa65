package ats

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/camilogonzalez/resumeia/internal/types"
)

// KeywordAnalysis partitions job keywords by whether they appear anywhere in
// the CV, with the proportional score out of maxKeywordScore.
type KeywordAnalysis struct {
	Found   []string
	Missing []string
	Score   int
}

// MatchKeywords checks each job keyword against the whole CV serialized to a
// single lowercase blob. Keywords may legitimately appear in the summary,
// achievements, or skills, so the search is deliberately scope-insensitive;
// the occasional false positive is the accepted cost.
//
// With no job keywords the candidate gets the full score: absence of job
// context must not penalize the CV.
func MatchKeywords(cv *types.CVContent, jobKeywords []string) KeywordAnalysis {
	if len(jobKeywords) == 0 {
		return KeywordAnalysis{
			Found:   []string{},
			Missing: []string{},
			Score:   maxKeywordScore,
		}
	}

	blob, err := json.Marshal(cv)
	if err != nil {
		// CVContent contains only strings and slices; marshal cannot fail.
		blob = nil
	}
	cvText := strings.ToLower(string(blob))

	found := make([]string, 0, len(jobKeywords))
	missing := make([]string, 0)
	for _, keyword := range jobKeywords {
		if strings.Contains(cvText, strings.ToLower(keyword)) {
			found = append(found, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	matched := float64(len(found)) / float64(len(jobKeywords))
	score := int(math.Round(matched * float64(maxKeywordScore)))

	return KeywordAnalysis{Found: found, Missing: missing, Score: score}
}
