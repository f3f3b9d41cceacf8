package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"italiano/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProvider records requests and returns a canned reply
type fakeProvider struct {
	reply string
	err   error
	delay time.Duration
	calls []Request
}

func (f *fakeProvider) Complete(ctx context.Context, req Request) (string, error) {
	f.calls = append(f.calls, req)
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return f.reply, f.err
}

func (f *fakeProvider) ModelID() string { return "fake" }

func TestGateway_DisabledNeverCalls(t *testing.T) {
	g := NewGateway(nil, 0, nil, zap.NewNop())

	assert.False(t, g.Enabled())

	_, err := g.Ask(context.Background(), "come stai?")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = g.Horoscope(context.Background(), domain.DayOf(time.Now()))
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, g.Ping(context.Background()), ErrUnavailable)
}

func TestGateway_Ask(t *testing.T) {
	provider := &fakeProvider{reply: "Ciao vuol dire hello."}
	g := NewGateway(provider, time.Second, nil, zap.NewNop())

	answer, err := g.Ask(context.Background(), "What does ciao mean?")
	require.NoError(t, err)
	assert.Equal(t, "Ciao vuol dire hello.", answer)

	require.Len(t, provider.calls, 1)
	req := provider.calls[0]
	assert.Equal(t, FreeQuestion.System, req.System)
	assert.Equal(t, 500, req.MaxTokens)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "What does ciao mean?"}}, req.Messages)
}

func TestGateway_TutorSendsHistoryThenText(t *testing.T) {
	provider := &fakeProvider{reply: "Bravo!"}
	g := NewGateway(provider, time.Second, nil, zap.NewNop())

	history := []domain.Turn{
		{Role: domain.RoleUser, Text: "Io sono Marco"},
		{Role: domain.RoleAssistant, Text: "Piacere, Marco!"},
	}
	_, err := g.Tutor(context.Background(), history, "Io mangiare pizza")
	require.NoError(t, err)

	require.Len(t, provider.calls, 1)
	req := provider.calls[0]
	assert.Equal(t, Tutor.System, req.System)
	assert.Equal(t, 400, req.MaxTokens)
	assert.Equal(t, []Message{
		{Role: RoleUser, Content: "Io sono Marco"},
		{Role: RoleAssistant, Content: "Piacere, Marco!"},
		{Role: RoleUser, Content: "Io mangiare pizza"},
	}, req.Messages)
}

func TestGateway_HoroscopeMentionsDate(t *testing.T) {
	provider := &fakeProvider{reply: "Oggi è una bella giornata"}
	g := NewGateway(provider, time.Second, nil, zap.NewNop())

	day := domain.DayOf(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	_, err := g.Horoscope(context.Background(), day)
	require.NoError(t, err)

	require.Len(t, provider.calls, 1)
	assert.Contains(t, provider.calls[0].Messages[0].Content, "14 ottobre 2026")
	assert.Equal(t, 300, provider.calls[0].MaxTokens)
}

func TestGateway_Errors(t *testing.T) {
	tests := []struct {
		name       string
		provider   *fakeProvider
		timeout    time.Duration
		statusCode int
		deadline   bool
	}{
		{
			name:     "transport error",
			provider: &fakeProvider{err: errors.New("connection refused")},
			timeout:  time.Second,
		},
		{
			name:       "api error with status",
			provider:   &fakeProvider{err: &statusError{code: 429, err: errors.New("quota exceeded")}},
			timeout:    time.Second,
			statusCode: 429,
		},
		{
			name:     "empty completion",
			provider: &fakeProvider{reply: "   "},
			timeout:  time.Second,
		},
		{
			name:     "timeout",
			provider: &fakeProvider{reply: "too late", delay: time.Second},
			timeout:  10 * time.Millisecond,
			deadline: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGateway(tt.provider, tt.timeout, nil, zap.NewNop())

			_, err := g.Ask(context.Background(), "domanda")

			var assistantErr *Error
			require.ErrorAs(t, err, &assistantErr)
			assert.Equal(t, "ask", assistantErr.Profile)
			assert.Equal(t, tt.statusCode, assistantErr.StatusCode)
			assert.NotErrorIs(t, err, ErrUnavailable)
			if tt.deadline {
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			}
		})
	}
}
