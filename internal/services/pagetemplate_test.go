package services

import (
	"strings"
	"testing"
)

func TestWrapProducesFullDocument(t *testing.T) {
	pt, err := NewPageTemplate()
	if err != nil {
		t.Fatalf("NewPageTemplate: %v", err)
	}

	got, err := pt.Wrap("Backend Engineer", "<p>Job</p>", "ru")
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="ru">`,
		"<title>Backend Engineer</title>",
		"<p>Job</p>",
		"</body>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("wrapped document missing %q:\n%s", want, got)
		}
	}
}

func TestWrapIsDeterministic(t *testing.T) {
	pt, err := NewPageTemplate()
	if err != nil {
		t.Fatalf("NewPageTemplate: %v", err)
	}

	first, err := pt.Wrap("Title", "<p>Body</p>", "en")
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	second, err := pt.Wrap("Title", "<p>Body</p>", "en")
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if first != second {
		t.Fatalf("Wrap is not deterministic")
	}
}

func TestWrapKeepsBodyVerbatimAndEscapesTitle(t *testing.T) {
	pt, err := NewPageTemplate()
	if err != nil {
		t.Fatalf("NewPageTemplate: %v", err)
	}

	body := "<h3>Intro</h3>\n<p>a &amp; b</p>"
	got, err := pt.Wrap(`A <b>"bold"</b> title`, body, "en")
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if !strings.Contains(got, body) {
		t.Fatalf("body was altered:\n%s", got)
	}
	if strings.Contains(got, "<title>A <b>") {
		t.Fatalf("title markup was not escaped:\n%s", got)
	}
	if !strings.Contains(got, "&lt;b&gt;") {
		t.Fatalf("escaped title not found:\n%s", got)
	}
}
