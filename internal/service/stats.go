package service

import (
	"italiano/internal/domain"
	"italiano/internal/metrics"
	"italiano/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles progress and usage statistics
type StatsService struct {
	state   repository.StateRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(state repository.StateRepository, m *metrics.Metrics, logger *zap.Logger) *StatsService {
	return &StatsService{
		state:   state,
		metrics: m,
		logger:  logger,
	}
}

// Progress returns the user's counters
func (s *StatsService) Progress(userID int64) domain.Progress {
	return s.state.GetOrCreateProgress(userID)
}

// ReportUsers publishes the number of tracked users
func (s *StatsService) ReportUsers() int {
	n := s.state.UserCount()
	s.metrics.SetUsers(n)
	s.logger.Info("Users with state", zap.Int("users", n))
	return n
}
