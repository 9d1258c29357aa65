package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendations_KeywordSuggestionsCappedAtThree(t *testing.T) {
	recs := Recommendations([]string{"Rust", "Scala", "Erlang", "Haskell"}, 25, 15)

	assert.Len(t, recs, 3)
	assert.Equal(t, `Add "Rust" to your skills or experience if applicable`, recs[0])
	assert.Equal(t, `Add "Scala" to your skills or experience if applicable`, recs[1])
	assert.Equal(t, `Add "Erlang" to your skills or experience if applicable`, recs[2])
}

func TestRecommendations_OrderingKeywordsThenExperience(t *testing.T) {
	// 4 missing keywords, weak experience, fine skills: exactly 3 keyword
	// suggestions followed by the 3 experience suggestions, nothing else.
	recs := Recommendations([]string{"Rust", "Scala", "Erlang", "Haskell"}, 15, 14)

	assert.Len(t, recs, 6)
	assert.Equal(t, `Add "Rust" to your skills or experience if applicable`, recs[0])
	assert.Equal(t, "Include more quantifiable achievements with metrics (%, $, numbers)", recs[3])
	assert.Equal(t, "Use stronger action verbs (Led, Architected, Implemented, Drove)", recs[4])
	assert.Equal(t, "Add more detailed role descriptions with key technologies", recs[5])
}

func TestRecommendations_SkillsSuggestions(t *testing.T) {
	recs := Recommendations(nil, 25, 11)

	assert.Equal(t, []string{
		"Expand your skills section with more relevant technologies",
		"Organize skills into clear categories for better ATS parsing",
	}, recs)
}

func TestRecommendations_ThresholdsAreExclusive(t *testing.T) {
	recs := Recommendations(nil, 20, 12)

	// 20 and 12 sit exactly on the thresholds and trigger nothing, so the
	// fallback lines appear.
	assert.Equal(t, []string{
		"Your resume looks good! Consider adding more specific metrics to achievements",
		"Keep your resume updated with latest technologies and accomplishments",
	}, recs)
}

func TestRecommendations_FallbackOnlyWhenEmpty(t *testing.T) {
	recs := Recommendations([]string{"Rust"}, 25, 15)

	assert.Len(t, recs, 1)
	assert.NotContains(t, recs, "Your resume looks good! Consider adding more specific metrics to achievements")
}
