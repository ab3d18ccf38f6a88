package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentwire/article-service/internal/apperr"
	"github.com/talentwire/article-service/internal/logger"
	"github.com/talentwire/article-service/internal/repos"
	"github.com/talentwire/article-service/internal/types"
)

const htmlContentType = "text/html; charset=utf-8"

// ArticleService runs the generation pipeline: acquire body, wrap in the page
// template, upload to the object store, persist the metadata row.
type ArticleService interface {
	GenerateHTML(ctx context.Context, req *types.GenerateArticleRequest) (*types.ArticleResponse, error)
	GetArticle(ctx context.Context, id int64) (*types.Article, error)
	GetBySourceEntity(ctx context.Context, sourceEntityID int64, formatType types.FormatType) ([]*types.Article, error)
	ListArticles(ctx context.Context, limit, offset int) ([]*types.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}

type articleService struct {
	db           *gorm.DB
	log          *logger.Logger
	articleRepo  repos.ArticleRepo
	bucket       BucketService
	formatter    FormatterService
	pageTemplate *PageTemplate
}

func NewArticleService(
	db *gorm.DB,
	log *logger.Logger,
	articleRepo repos.ArticleRepo,
	bucket BucketService,
	formatter FormatterService,
	pageTemplate *PageTemplate,
) ArticleService {
	serviceLog := log.With("service", "ArticleService")
	return &articleService{
		db:           db,
		log:          serviceLog,
		articleRepo:  articleRepo,
		bucket:       bucket,
		formatter:    formatter,
		pageTemplate: pageTemplate,
	}
}

func (s *articleService) GenerateHTML(ctx context.Context, req *types.GenerateArticleRequest) (*types.ArticleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err)
	}

	// 1. Acquire the body: pass-through or model formatting.
	var bodyHTML string
	switch req.ContentMode {
	case types.ContentModeFormatted:
		bodyHTML = req.HTMLContent
	case types.ContentModeRaw:
		formatted, err := s.formatter.FormatText(ctx, req.RawText, req.FormattingRules, req.Lang)
		if err != nil {
			return nil, apperr.Formatting(err)
		}
		bodyHTML = formatted
	}

	// 2. Wrap in the page template.
	fullHTML, err := s.pageTemplate.Wrap(req.Title, bodyHTML, req.Lang)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap article body: %w", err)
	}

	// 3. Upload under a fresh random key. Nothing is persisted yet, so an
	// upload failure leaves no trace.
	key := newArtifactKey(types.FormatTypeHTML, req.ArticleType)
	publicURL, err := s.bucket.Upload(ctx, key, []byte(fullHTML), htmlContentType)
	if err != nil {
		return nil, apperr.Upload(err)
	}

	// 4. Persist metadata. On failure the uploaded object is deleted best
	// effort: the row was never written, so the object would be unreachable.
	article, err := s.articleRepo.Create(ctx, nil, &types.Article{
		Title:          req.Title,
		ArticleType:    req.ArticleType,
		ContentMode:    req.ContentMode,
		FormatType:     types.FormatTypeHTML,
		S3Key:          key,
		PublicURL:      publicURL,
		SourceEntityID: req.SourceEntityID,
		Lang:           req.Lang,
	})
	if err != nil {
		s.bucket.Delete(ctx, key)
		return nil, apperr.Persistence(fmt.Errorf("failed to persist article metadata: %w", err))
	}

	s.log.Info("HTML article created",
		"article_id", article.ID,
		"article_type", string(req.ArticleType),
		"content_mode", string(req.ContentMode),
		"public_url", publicURL,
	)

	resp := types.NewArticleResponse(article)
	return &resp, nil
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (*types.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if article == nil {
		return nil, apperr.NotFound("article", id)
	}
	return article, nil
}

func (s *articleService) GetBySourceEntity(ctx context.Context, sourceEntityID int64, formatType types.FormatType) ([]*types.Article, error) {
	articles, err := s.articleRepo.GetBySourceEntity(ctx, nil, sourceEntityID, formatType)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return articles, nil
}

func (s *articleService) ListArticles(ctx context.Context, limit, offset int) ([]*types.Article, error) {
	articles, err := s.articleRepo.List(ctx, nil, limit, offset)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return articles, nil
}

// DeleteArticle is the administrative cleanup flow: the row is removed first,
// then the stored object best effort.
func (s *articleService) DeleteArticle(ctx context.Context, id int64) error {
	article, err := s.articleRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apperr.Persistence(err)
	}
	if article == nil {
		return apperr.NotFound("article", id)
	}

	deleted, err := s.articleRepo.Delete(ctx, nil, id)
	if err != nil {
		return apperr.Persistence(err)
	}
	if !deleted {
		return apperr.NotFound("article", id)
	}

	s.bucket.Delete(ctx, article.S3Key)
	s.log.Info("Article deleted", "article_id", id, "key", article.S3Key)
	return nil
}

// newArtifactKey builds {format}/{type}/{token}.html with a fresh 128-bit
// random token, never derived from title or content.
func newArtifactKey(formatType types.FormatType, articleType types.ArticleType) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s/%s/%s.html", formatType, articleType, token)
}
