// Package pdf renders CV content to styled HTML and prints it to PDF with a
// headless browser. Three visual templates are supported: modern, classic
// and minimalist.
package pdf

import (
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/camilogonzalez/resumeia/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultTemplate is used when no template name is given.
const DefaultTemplate = "modern"

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

var templates = template.Must(
	template.New("cv").Funcs(template.FuncMap{
		"emphasize": emphasize,
		"join":      strings.Join,
	}).ParseFS(templateFS, "templates/*.html"),
)

// TemplateNames returns the supported template names.
func TemplateNames() []string {
	return []string{"modern", "classic", "minimalist"}
}

// ValidTemplate reports whether name is a known template.
func ValidTemplate(name string) bool {
	for _, known := range TemplateNames() {
		if name == known {
			return true
		}
	}
	return false
}

// RenderHTML renders CV content into a full HTML document using the named
// template. An empty name selects the default template.
func RenderHTML(cv *types.CVContent, templateName string) (string, error) {
	if templateName == "" {
		templateName = DefaultTemplate
	}
	if !ValidTemplate(templateName) {
		return "", fmt.Errorf("unknown template %q", templateName)
	}

	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, templateName+".html", cv); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", templateName, err)
	}
	return sb.String(), nil
}

// emphasize converts inline **bold** markers to <strong> elements. All other
// text is escaped first, so markers are the only HTML that survives.
func emphasize(text string) template.HTML {
	escaped := template.HTMLEscapeString(text)
	withBold := boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
	return template.HTML(withBold)
}
