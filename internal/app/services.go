package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/talentwire/article-service/internal/logger"
	"github.com/talentwire/article-service/internal/services"
)

type Services struct {
	Bucket    services.BucketService
	AIClient  services.AIClient
	Formatter services.FormatterService
	Article   services.ArticleService
	Health    services.HealthService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	bucketService, err := services.NewBucketService(cfg.Bucket, log)
	if err != nil {
		return Services{}, fmt.Errorf("init bucket service: %w", err)
	}

	aiClient, err := services.NewAIClient(cfg.AI, log)
	if err != nil {
		return Services{}, fmt.Errorf("init ai client: %w", err)
	}
	formatterService := services.NewFormatterService(aiClient, log)

	pageTemplate, err := services.NewPageTemplate()
	if err != nil {
		return Services{}, fmt.Errorf("init page template: %w", err)
	}

	articleService := services.NewArticleService(db, log, reposet.Article, bucketService, formatterService, pageTemplate)
	healthService := services.NewHealthService(db, log)

	return Services{
		Bucket:    bucketService,
		AIClient:  aiClient,
		Formatter: formatterService,
		Article:   articleService,
		Health:    healthService,
	}, nil
}
