package app

import (
	"github.com/talentwire/article-service/internal/db"
	"github.com/talentwire/article-service/internal/logger"
	"github.com/talentwire/article-service/internal/services"
	"github.com/talentwire/article-service/internal/utils"
)

// Config is loaded once at startup and injected into every constructor; no
// business code reads the environment directly.
type Config struct {
	Debug bool
	Port  string

	Postgres db.PostgresConfig
	Bucket   services.BucketConfig
	AI       services.AIClientConfig
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Debug: utils.GetEnvAsBool("MODE_DEBUG", false, log),
		Port:  utils.GetEnv("ARTICLE_SERVICE_PORT", "8020", log),

		Postgres: db.PostgresConfig{
			Host:     utils.GetEnv("POSTGRES_HOST", "localhost", log),
			Port:     utils.GetEnv("POSTGRES_PORT", "5432", log),
			User:     utils.GetEnv("POSTGRES_USER", "postgres", log),
			Password: utils.GetEnv("POSTGRES_PASSWORD", "", log),
			Name:     utils.GetEnv("POSTGRES_NAME", "articles", log),
		},
		Bucket: services.BucketConfig{
			BucketName:      utils.GetEnv("STORAGE_BUCKET_NAME", "hr-articles", log),
			ProjectID:       utils.GetEnv("STORAGE_PROJECT_ID", "", log),
			EmulatorHost:    utils.GetEnv("STORAGE_EMULATOR_HOST", "", log),
			PublicBaseURL:   utils.GetEnv("STORAGE_PUBLIC_BASE_URL", "", log),
			CredentialsFile: utils.GetEnv("GOOGLE_APPLICATION_CREDENTIALS_JSON", "", log),
		},
		AI: services.AIClientConfig{
			APIKey:    utils.GetEnv("OPENAI_API_KEY", "", log),
			BaseURL:   utils.GetEnv("OPENAI_BASE_URL", "https://api.openai.com/v1", log),
			ChatModel: utils.GetEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini", log),
		},
	}
}
