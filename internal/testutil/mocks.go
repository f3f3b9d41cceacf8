package testutil

import (
	"context"

	"italiano/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAssistant is a mock for service.Assistant
type MockAssistant struct {
	mock.Mock
	Disabled bool
}

func (m *MockAssistant) Enabled() bool {
	return !m.Disabled
}

func (m *MockAssistant) Ask(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

func (m *MockAssistant) Tutor(ctx context.Context, history []domain.Turn, text string) (string, error) {
	args := m.Called(ctx, history, text)
	return args.String(0), args.Error(1)
}

func (m *MockAssistant) Horoscope(ctx context.Context, day domain.Day) (string, error) {
	args := m.Called(ctx, day)
	return args.String(0), args.Error(1)
}
