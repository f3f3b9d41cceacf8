package handler

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"italiano/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestIsConflict(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "telegram error code", err: &tele.Error{Code: 409, Description: "Conflict"}, expected: true},
		{name: "formatted description", err: errors.New("telegram: Conflict: terminated by other getUpdates request; make sure that only one bot instance is running (409)"), expected: true},
		{name: "wrapped", err: fmt.Errorf("poll: %w", &tele.Error{Code: 409}), expected: true},
		{name: "other telegram error", err: &tele.Error{Code: 502, Description: "Bad Gateway"}, expected: false},
		{name: "network error", err: errors.New("dial tcp: i/o timeout"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isConflict(tt.err))
		})
	}
}

func TestConflictPoller_DeliversUpdates(t *testing.T) {
	p := NewConflictPoller(time.Second, testutil.NewTestLogger())
	var offsets []int
	p.fetch = func(_ *tele.Bot, offset int, _ time.Duration) ([]tele.Update, error) {
		offsets = append(offsets, offset)
		if len(offsets) == 1 {
			return []tele.Update{{ID: 5}, {ID: 6}}, nil
		}
		return nil, &tele.Error{Code: 409}
	}

	dest := make(chan tele.Update, 2)
	p.Poll(nil, dest, make(chan struct{}))

	assert.Equal(t, []int{1, 7}, offsets)
	assert.Equal(t, 5, (<-dest).ID)
	assert.Equal(t, 6, (<-dest).ID)
}

func TestConflictPoller_ReportsConflict(t *testing.T) {
	p := NewConflictPoller(time.Second, testutil.NewTestLogger())
	p.fetch = func(*tele.Bot, int, time.Duration) ([]tele.Update, error) {
		return nil, errors.New("telegram: Conflict: terminated by other getUpdates request (409)")
	}

	p.Poll(nil, make(chan tele.Update), make(chan struct{}))

	select {
	case err := <-p.Conflict():
		assert.ErrorIs(t, err, ErrTransportConflict)
	default:
		t.Fatal("conflict was not reported")
	}
}

func TestConflictPoller_RetriesOtherErrors(t *testing.T) {
	p := NewConflictPoller(time.Second, testutil.NewTestLogger())
	p.RetryDelay = time.Millisecond
	calls := 0
	p.fetch = func(*tele.Bot, int, time.Duration) ([]tele.Update, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("bad gateway")
		}
		return nil, &tele.Error{Code: 409}
	}

	p.Poll(nil, make(chan tele.Update), make(chan struct{}))

	assert.Equal(t, 3, calls)
	require.Len(t, p.Conflict(), 1)
}

func TestConflictPoller_Stop(t *testing.T) {
	p := NewConflictPoller(time.Second, testutil.NewTestLogger())
	p.RetryDelay = time.Hour
	p.fetch = func(*tele.Bot, int, time.Duration) ([]tele.Update, error) {
		return nil, errors.New("bad gateway")
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		p.Poll(nil, make(chan tele.Update), stop)
		close(done)
	}()
	close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
	assert.Empty(t, p.Conflict())
}
