package services

import (
	"log/slog"

	"github.com/the-Alberich/code-test-ba/metrics"
	"github.com/the-Alberich/code-test-ba/repositories"
)

// Services holds all service instances
type Services struct {
	Logs LogService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, logger *slog.Logger, m *metrics.Metrics) *Services {
	return &Services{
		Logs: NewLogService(repos.Logs, logger, WithMetrics(m)),
	}
}
