package services

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/base.html
var templateFS embed.FS

// PageTemplate wraps body HTML into the full article document. The template
// is parsed once at construction and is safe for concurrent use.
type PageTemplate struct {
	tmpl *template.Template
}

type pageData struct {
	Title string
	Lang  string
	Body  template.HTML
}

func NewPageTemplate() (*PageTemplate, error) {
	tmpl, err := template.New("base.html").ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &PageTemplate{tmpl: tmpl}, nil
}

// Wrap produces the complete document. The body is caller-trusted HTML and is
// inserted verbatim; the title gets the template engine's default escaping.
func (t *PageTemplate) Wrap(title, body, lang string) (string, error) {
	var sb strings.Builder
	err := t.tmpl.Execute(&sb, pageData{
		Title: title,
		Lang:  lang,
		Body:  template.HTML(body),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render page template: %w", err)
	}
	return sb.String(), nil
}
