// Package ats implements the rule-based ATS compatibility scorer. It extracts
// domain vocabulary from free-form job requirement text, scores CV content
// against it through five weighted sub-scorers, and produces actionable
// recommendations. Detection is shallow pattern matching by design, not
// language understanding; the scoring bands are calibrated to that.
package ats

import (
	"regexp"
	"strings"
)

// patternClass is one named vocabulary class in the extraction battery.
// Classes run in a fixed order: when the same term is matched by more than
// one class with different casing, the casing of the earliest match is kept.
type patternClass struct {
	name    string
	pattern *regexp.Regexp
}

// keywordClasses is the full extraction battery. Adding a vocabulary class
// is a data change, not a control-flow change.
var keywordClasses = []patternClass{
	{"languages", regexp.MustCompile(`(?i)\b(JavaScript|TypeScript|Python|Java|C\+\+|C#|Ruby|Go|Rust|PHP|Swift|Kotlin|Scala)\b`)},
	{"frameworks", regexp.MustCompile(`(?i)\b(React|Vue|Angular|Next\.js|Node\.js|Express|Django|Flask|Spring|Laravel|Rails)\b`)},
	{"databases", regexp.MustCompile(`(?i)\b(PostgreSQL|MySQL|MongoDB|Redis|Cassandra|DynamoDB|Oracle|SQL Server)\b`)},
	{"cloud-devops", regexp.MustCompile(`(?i)\b(AWS|Azure|GCP|Docker|Kubernetes|Jenkins|GitHub Actions|CI/CD|Terraform)\b`)},
	{"ai-ml", regexp.MustCompile(`(?i)\b(Machine Learning|Deep Learning|TensorFlow|PyTorch|Scikit-learn|NLP|Computer Vision)\b`)},
	{"tooling", regexp.MustCompile(`(?i)\b(Git|Jira|Agile|Scrum|REST|GraphQL|Microservices)\b`)},
	{"experience-years", regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)},
	{"certifications", regexp.MustCompile(`(?i)\b(AWS Certified|PMP|Scrum Master|CKA|CKAD)\b`)},
	{"soft-skills", regexp.MustCompile(`(?i)\b(leadership|communication|team player|problem solving|analytical|collaborative|mentoring)\b`)},
}

// ExtractKeywords pulls domain vocabulary out of raw job requirement text.
// The result is deduplicated case-insensitively with the casing of the first
// match preserved for display. Empty input yields an empty set, not an
// error: absence of job context is a valid state.
func ExtractKeywords(jobText string) []string {
	if strings.TrimSpace(jobText) == "" {
		return nil
	}

	seen := make(map[string]bool)
	var keywords []string

	for _, class := range keywordClasses {
		for _, match := range class.pattern.FindAllString(jobText, -1) {
			match = strings.TrimSpace(match)
			key := strings.ToLower(match)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			keywords = append(keywords, match)
		}
	}

	return keywords
}
