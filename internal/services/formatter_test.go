package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeAIClient struct {
	reply    string
	err      error
	messages []AIMessage
	calls    int
}

func (f *fakeAIClient) Chat(ctx context.Context, messages []AIMessage) (*AICompletion, error) {
	f.calls++
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &AICompletion{Content: f.reply}, nil
}

func newTestFormatter(t *testing.T, ai AIClient) FormatterService {
	t.Helper()
	return NewFormatterService(ai, testLogger(t))
}

func TestCleanModelArtifacts(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fences_with_language_tag",
			in:   "```html\n<p>hi</p>\n```",
			want: "<p>hi</p>",
		},
		{
			name: "fences_without_language_tag",
			in:   "```\n<p>hi</p>\n```",
			want: "<p>hi</p>",
		},
		{
			name: "preamble_before_fenced_html",
			in:   "Here is your HTML:\n```html\n<p>hi</p>\n```",
			want: "<p>hi</p>",
		},
		{
			name: "preamble_lines_dropped",
			in:   "Sure!\nThis is the result.\n<h3>Title</h3>\n<p>Body</p>",
			want: "<h3>Title</h3>\n<p>Body</p>",
		},
		{
			name: "blank_lines_inside_body_kept",
			in:   "<h3>Title</h3>\n\n<p>Body</p>",
			want: "<h3>Title</h3>\n\n<p>Body</p>",
		},
		{
			name: "blank_line_runs_collapsed",
			in:   "<p>one</p>\n\n\n\n<p>two</p>",
			want: "<p>one</p>\n\n<p>two</p>",
		},
		{
			name: "surrounding_whitespace_trimmed",
			in:   "\n\n  <p>hi</p>  \n\n",
			want: "<p>hi</p>",
		},
		{
			name: "clean_input_untouched",
			in:   "<p>hi</p>",
			want: "<p>hi</p>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cleanModelArtifacts(tc.in)
			if got != tc.want {
				t.Fatalf("cleanModelArtifacts(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatTextUsesDefaultPrompt(t *testing.T) {
	ai := &fakeAIClient{reply: "<p>done</p>"}
	svc := newTestFormatter(t, ai)

	got, err := svc.FormatText(context.Background(), "some text", "", "ru")
	if err != nil {
		t.Fatalf("FormatText: %v", err)
	}
	if got != "<p>done</p>" {
		t.Fatalf("body: want=%q got=%q", "<p>done</p>", got)
	}
	if len(ai.messages) != 2 {
		t.Fatalf("messages: want 2 got %d", len(ai.messages))
	}
	if ai.messages[0].Role != "system" || ai.messages[0].Content != defaultFormattingPrompt {
		t.Fatalf("system message: got role=%q content=%q", ai.messages[0].Role, ai.messages[0].Content)
	}
	if ai.messages[1].Role != "user" || ai.messages[1].Content != "some text" {
		t.Fatalf("user message: got role=%q content=%q", ai.messages[1].Role, ai.messages[1].Content)
	}
}

func TestFormatTextCustomRulesAndEnglish(t *testing.T) {
	ai := &fakeAIClient{reply: "<p>done</p>"}
	svc := newTestFormatter(t, ai)

	if _, err := svc.FormatText(context.Background(), "text", "use tables", "en"); err != nil {
		t.Fatalf("FormatText: %v", err)
	}
	system := ai.messages[0].Content
	if !strings.HasPrefix(system, "use tables") {
		t.Fatalf("system prompt should start with custom rules, got %q", system)
	}
	if !strings.Contains(system, "Respond in English.") {
		t.Fatalf("system prompt missing English directive: %q", system)
	}
}

func TestFormatTextRussianHasNoEnglishDirective(t *testing.T) {
	ai := &fakeAIClient{reply: "<p>done</p>"}
	svc := newTestFormatter(t, ai)

	if _, err := svc.FormatText(context.Background(), "text", "", "ru"); err != nil {
		t.Fatalf("FormatText: %v", err)
	}
	if strings.Contains(ai.messages[0].Content, "Respond in English.") {
		t.Fatalf("ru prompt must not force English output")
	}
}

func TestFormatTextFailures(t *testing.T) {
	cases := []struct {
		name string
		ai   *fakeAIClient
	}{
		{name: "chat_error", ai: &fakeAIClient{err: errors.New("boom")}},
		{name: "empty_reply", ai: &fakeAIClient{reply: ""}},
		{name: "whitespace_reply", ai: &fakeAIClient{reply: "  \n\n  "}},
		{name: "fences_only", ai: &fakeAIClient{reply: "```html\n```"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestFormatter(t, tc.ai)
			if _, err := svc.FormatText(context.Background(), "text", "", "ru"); err == nil {
				t.Fatalf("FormatText: expected error, got nil")
			}
		})
	}
}
