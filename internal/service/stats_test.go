package service

import (
	"testing"

	"italiano/internal/domain"
	"italiano/internal/metrics"
	"italiano/internal/repository/memory"
	"italiano/internal/testutil"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatsService_Progress(t *testing.T) {
	state := memory.NewStateRepo()
	service := NewStatsService(state, nil, testutil.NewTestLogger())

	assert.Equal(t, domain.NewProgress(), service.Progress(123))

	state.IncrementConversations(123)
	assert.Equal(t, 1, service.Progress(123).Conversations)
}

func TestStatsService_ReportUsers(t *testing.T) {
	state := memory.NewStateRepo()
	m := metrics.New(prometheus.NewRegistry())
	service := NewStatsService(state, m, testutil.NewTestLogger())

	state.SetTutorMode(1, true)
	state.GetOrCreateProgress(2)

	assert.Equal(t, 2, service.ReportUsers())
	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.UsersTotal))
}
