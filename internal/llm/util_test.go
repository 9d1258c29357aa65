package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON untouched",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "json fence stripped",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "bare fence stripped",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "language identifier skipped",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n{\"key\": \"value\"}\n  ",
			expected: `{"key": "value"}`,
		},
		{
			name:     "fence with inner backticks keeps content",
			input:    "```json\n{\"text\": \"use `go test`\"}\n```",
			expected: "{\"text\": \"use `go test`\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfig_GetModelFallback(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierStandard: "gemini-2.5-flash"},
	}

	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
}

func TestConfig_WithModelDoesNotMutate(t *testing.T) {
	base := DefaultGeminiConfig()
	override := base.WithModel(TierAdvanced, "gemini-custom")

	assert.Equal(t, "gemini-custom", override.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-pro", base.GetModel(TierAdvanced))
}
