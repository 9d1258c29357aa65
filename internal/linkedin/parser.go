// Package linkedin parses manually pasted LinkedIn profile text into profile
// fields. LinkedIn exports and copy-pastes come in loose formats, so parsing
// is label and section heuristics rather than a grammar.
package linkedin

import (
	"regexp"
	"strings"
)

// ParsedProfile holds whatever fields could be recognized in the pasted
// text. Unrecognized fields stay empty.
type ParsedProfile struct {
	FullName          string   `json:"full_name,omitempty"`
	ProfessionalTitle string   `json:"professional_title,omitempty"`
	Location          string   `json:"location,omitempty"`
	LinkedinURL       string   `json:"linkedin_url,omitempty"`
	WorkExperience    string   `json:"work_experience,omitempty"`
	Education         string   `json:"education,omitempty"`
	Skills            []string `json:"skills,omitempty"`
}

var (
	namePattern     = regexp.MustCompile(`(?i)(?:Name|Full Name):\s*(.+)`)
	titlePattern    = regexp.MustCompile(`(?i)(?:Headline|Title|Position):\s*(.+)`)
	locationPattern = regexp.MustCompile(`(?i)(?:Location|City|Based in):\s*(.+)`)
	urlPattern      = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	profileURLCheck = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[\w-]+/?$`)
	usernameExtract = regexp.MustCompile(`linkedin\.com/in/([\w-]+)`)

	skillSeparators = regexp.MustCompile(`[,;•|\n]`)
)

// ParseProfileText parses manually pasted LinkedIn profile data. It supports
// labeled fields ("Name: ..."), bare first-line names, and the standard
// Experience/Education/Skills section headers.
func ParseProfileText(text string) *ParsedProfile {
	result := &ParsedProfile{}

	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return result
	}

	if m := namePattern.FindStringSubmatch(text); m != nil {
		result.FullName = strings.TrimSpace(m[1])
	} else if len(lines[0]) < 100 && !strings.Contains(lines[0], ":") {
		// A short first line without a label is most likely the name.
		result.FullName = lines[0]
	}

	if m := titlePattern.FindStringSubmatch(text); m != nil {
		result.ProfessionalTitle = strings.TrimSpace(m[1])
	}

	if m := locationPattern.FindStringSubmatch(text); m != nil {
		result.Location = strings.TrimSpace(m[1])
	}

	if m := urlPattern.FindString(text); m != "" {
		if strings.HasPrefix(strings.ToLower(m), "http") {
			result.LinkedinURL = m
		} else {
			result.LinkedinURL = "https://" + m
		}
	}

	if section := extractSection(text, "Experience", "Work Experience", "Employment"); section != "" {
		result.WorkExperience = formatEntries(section, 100)
	}

	if section := extractSection(text, "Education", "Academic Background"); section != "" {
		result.Education = formatEntries(section, 150)
	}

	if section := extractSection(text, "Skills", "Technical Skills", "Competencies"); section != "" {
		result.Skills = parseSkills(section)
	}

	return result
}

// IsValidProfileURL reports whether url is a canonical LinkedIn profile URL.
func IsValidProfileURL(url string) bool {
	return profileURLCheck.MatchString(url)
}

// ExtractUsername returns the profile slug from a LinkedIn URL, or an empty
// string if the URL does not contain one.
func ExtractUsername(url string) string {
	if m := usernameExtract.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// extractSection returns the body of the first matching section header,
// delimited by the next "Word:" style header or end of text.
func extractSection(text string, headers ...string) string {
	for _, header := range headers {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(header) + `:?\s*\n([\s\S]*?)(?:\n[A-Z][a-z]+:|$)`)
		if m := pattern.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// formatEntries groups section lines into entries separated by "---".
// A short capitalized line that is not a bullet starts a new entry (company,
// school, or degree line).
func formatEntries(section string, headerLimit int) string {
	lines := nonEmptyLines(section)
	var entries []string
	var current []string

	for _, line := range lines {
		if looksLikeEntryHeader(line, headerLimit) && len(current) > 0 {
			entries = append(entries, strings.Join(current, "\n")+"\n---")
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, "\n"))
	}

	return strings.Join(entries, "\n")
}

// looksLikeEntryHeader reports whether a line starts a new entry.
func looksLikeEntryHeader(line string, limit int) bool {
	if len(line) == 0 || len(line) >= limit {
		return false
	}
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
		return false
	}
	first := line[0]
	return first >= 'A' && first <= 'Z'
}

// parseSkills splits a skills section on common separators and drops
// fragments too short or too long to be a skill name.
func parseSkills(section string) []string {
	var skills []string
	for _, part := range skillSeparators.Split(section, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 1 && len(part) < 50 {
			skills = append(skills, part)
		}
	}
	return skills
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
