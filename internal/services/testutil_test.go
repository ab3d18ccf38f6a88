package services

import (
	"testing"

	"go.uber.org/zap"

	"github.com/talentwire/article-service/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}
