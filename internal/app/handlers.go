package app

import (
	"github.com/gin-gonic/gin"

	"github.com/talentwire/article-service/internal/handlers"
	"github.com/talentwire/article-service/internal/logger"
	"github.com/talentwire/article-service/internal/server"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Article *handlers.ArticleHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  handlers.NewHealthHandler(serviceset.Health),
		Article: handlers.NewArticleHandler(log, serviceset.Article),
	}
}

func wireRouter(cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Debug:          cfg.Debug,
		HealthHandler:  handlerset.Health,
		ArticleHandler: handlerset.Article,
	})
}
