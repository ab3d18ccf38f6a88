package types

import (
	"fmt"
	"time"
)

// GenerateArticleRequest is the POST /api/v1/html/generate body.
type GenerateArticleRequest struct {
	ArticleType ArticleType `json:"article_type"`
	ContentMode ContentMode `json:"content_mode"`

	// formatted mode
	HTMLContent string `json:"html_content,omitempty"`

	// raw mode
	RawText         string `json:"raw_text,omitempty"`
	FormattingRules string `json:"formatting_rules,omitempty"`

	Title          string `json:"title"`
	Lang           string `json:"lang,omitempty"`
	SourceEntityID *int64 `json:"source_entity_id,omitempty"`
}

// Validate enforces the mode/content pairing before any collaborator runs.
func (r *GenerateArticleRequest) Validate() error {
	if !r.ArticleType.Valid() {
		return fmt.Errorf("unknown article_type %q", string(r.ArticleType))
	}
	if !r.ContentMode.Valid() {
		return fmt.Errorf("unknown content_mode %q", string(r.ContentMode))
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	switch r.ContentMode {
	case ContentModeFormatted:
		if r.HTMLContent == "" {
			return fmt.Errorf("html_content is required when content_mode=formatted")
		}
	case ContentModeRaw:
		if r.RawText == "" {
			return fmt.Errorf("raw_text is required when content_mode=raw")
		}
	}
	if r.Lang == "" {
		r.Lang = "ru"
	}
	return nil
}

// ArticleResponse is the wire shape for a generated or looked-up article.
type ArticleResponse struct {
	ID          int64       `json:"id"`
	PublicURL   string      `json:"public_url"`
	ArticleType ArticleType `json:"article_type"`
	FormatType  FormatType  `json:"format_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

func NewArticleResponse(a *Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		PublicURL:   a.PublicURL,
		ArticleType: a.ArticleType,
		FormatType:  a.FormatType,
		CreatedAt:   a.CreatedAt,
	}
}
