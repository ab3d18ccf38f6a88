package app

import (
	"gorm.io/gorm"

	"github.com/talentwire/article-service/internal/logger"
	"github.com/talentwire/article-service/internal/repos"
)

type Repos struct {
	Article repos.ArticleRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Article: repos.NewArticleRepo(db, log),
	}
}
