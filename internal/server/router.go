package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/talentwire/article-service/internal/handlers"
)

type RouterConfig struct {
	Debug          bool
	HealthHandler  *handlers.HealthHandler
	ArticleHandler *handlers.ArticleHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
	}))

	// Health
	router.GET("/health", cfg.HealthHandler.Check)
	router.GET("/health/live", cfg.HealthHandler.Live)
	router.GET("/health/ready", cfg.HealthHandler.Ready)

	// Articles
	api := router.Group("/api/v1")
	{
		html := api.Group("/html")
		html.POST("/generate", cfg.ArticleHandler.Generate)
		html.GET("", cfg.ArticleHandler.List)
		html.GET("/entity/:source_entity_id", cfg.ArticleHandler.GetBySourceEntity)
		html.GET("/:id", cfg.ArticleHandler.Get)
		html.DELETE("/:id", cfg.ArticleHandler.Delete)
	}

	return router
}
