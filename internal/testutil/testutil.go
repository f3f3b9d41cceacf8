package testutil

import (
	"time"

	"italiano/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// FixedTime returns a clock function stuck at t
func FixedTime(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestTurn creates a conversation turn
func NewTestTurn(role domain.Role, text string) domain.Turn {
	return domain.Turn{Role: role, Text: text}
}

// NewTestDay creates the calendar day of y-m-d
func NewTestDay(y int, m time.Month, d int) domain.Day {
	return domain.DayOf(time.Date(y, m, d, 12, 0, 0, 0, time.UTC))
}
