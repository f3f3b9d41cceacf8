package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOf_DropsTimeOfDay(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Skip("tzdata not available")
	}

	morning := DayOf(time.Date(2024, 12, 12, 0, 5, 0, 0, rome))
	evening := DayOf(time.Date(2024, 12, 12, 23, 55, 0, 0, rome))
	next := DayOf(time.Date(2024, 12, 13, 0, 0, 1, 0, rome))

	assert.True(t, morning.Equal(evening))
	assert.False(t, morning.Equal(next))
	assert.True(t, morning.AddDays(1).Equal(next))
}

func TestDay_DateString(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "date 2024-12-12",
			date:     time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
			expected: "20241212",
		},
		{
			name:     "date 2024-01-01",
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "20240101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DayOf(tt.date).DateString())
		})
	}
}

func TestDay_DisplayString(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "autumn",
			date:     time.Date(2026, 10, 14, 18, 30, 0, 0, time.UTC),
			expected: "14 ottobre 2026",
		},
		{
			name:     "new year",
			date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "1 gennaio 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DayOf(tt.date).DisplayString())
		})
	}
}

func TestDay_IsZero(t *testing.T) {
	assert.True(t, Day{}.IsZero())
	assert.False(t, DayOf(time.Now()).IsZero())
}
