package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/talentwire/article-service/internal/logger"
)

// defaultFormattingPrompt constrains the model to body-level semantic HTML.
const defaultFormattingPrompt = `You are an HTML layout specialist.
Convert the given text into clean, semantic HTML.

Rules:
- Use only these tags: <h3>, <h4>, <p>, <ul>, <ol>, <li>, <strong>, <em>, <blockquote>, <hr>
- Do NOT add <!DOCTYPE>, <html>, <head> or <body> — produce body content only
- Do NOT use inline styles or class attributes
- Structure the text logically: headings, paragraphs, lists
- Preserve the full meaning and content of the source text
- Return ONLY the HTML, no explanations and no markdown code blocks`

// FormatterService turns raw text into body HTML via the chat model.
type FormatterService interface {
	FormatText(ctx context.Context, rawText, formattingRules, lang string) (string, error)
}

type formatterService struct {
	log      *logger.Logger
	aiClient AIClient
}

func NewFormatterService(aiClient AIClient, log *logger.Logger) FormatterService {
	serviceLog := log.With("service", "FormatterService")
	return &formatterService{log: serviceLog, aiClient: aiClient}
}

func (s *formatterService) FormatText(ctx context.Context, rawText, formattingRules, lang string) (string, error) {
	systemPrompt := defaultFormattingPrompt
	if formattingRules != "" {
		systemPrompt = formattingRules
	}
	if lang == "en" {
		systemPrompt += "\n\nRespond in English."
	}

	completion, err := s.aiClient.Chat(ctx, []AIMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: rawText},
	})
	if err != nil {
		s.log.Error("Formatting call failed", "error", err)
		return "", fmt.Errorf("failed to format text: %w", err)
	}

	html := cleanModelArtifacts(completion.Content)
	if strings.TrimSpace(html) == "" {
		return "", fmt.Errorf("formatting model returned empty content")
	}

	s.log.Info("Text formatted", "input_len", len(rawText), "output_len", len(html))
	return html, nil
}

var (
	fenceRe     = regexp.MustCompile("(?i)```[a-z]*[ \t]*\n?")
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// cleanModelArtifacts strips markdown code fences, any prose preamble before
// the first HTML line, and runs of blank lines the model tends to emit.
func cleanModelArtifacts(html string) string {
	html = fenceRe.ReplaceAllString(html, "")

	lines := strings.Split(html, "\n")
	cleanLines := make([]string, 0, len(lines))
	started := false
	for _, line := range lines {
		if !started {
			stripped := strings.TrimSpace(line)
			if stripped == "" || !strings.HasPrefix(stripped, "<") {
				continue
			}
			started = true
		}
		cleanLines = append(cleanLines, line)
	}
	html = strings.Join(cleanLines, "\n")

	html = blankRunsRe.ReplaceAllString(html, "\n\n")
	return strings.TrimSpace(html)
}
