package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/talentwire/article-service/internal/logger"
)

const ServiceVersion = "1.0.0"

type HealthReport struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
}

// HealthService reports service liveness plus database reachability.
type HealthService interface {
	Check(ctx context.Context) HealthReport
}

type healthService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthService(db *gorm.DB, log *logger.Logger) HealthService {
	return &healthService{db: db, log: log.With("service", "HealthService")}
}

func (s *healthService) Check(ctx context.Context) HealthReport {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	report := HealthReport{
		Status:    "healthy",
		Version:   ServiceVersion,
		Timestamp: time.Now().UTC(),
		Database:  "connected",
	}

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		s.log.Warn("Database health check failed", "error", err)
		report.Status = "unhealthy"
		report.Database = "disconnected"
		report.Error = err.Error()
	}
	return report
}
