package middleware

import (
	"errors"
	"testing"

	"italiano/internal/domain"
	"italiano/internal/metrics"
	"italiano/internal/testutil"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func newContext(u tele.Update) tele.Context {
	return (&tele.Bot{}).NewContext(u)
}

func TestUpdateKind(t *testing.T) {
	tests := []struct {
		name     string
		update   tele.Update
		expected domain.EventKind
	}{
		{
			name:     "command",
			update:   tele.Update{Message: &tele.Message{Text: "/start"}},
			expected: domain.EventCommand,
		},
		{
			name:     "plain text",
			update:   tele.Update{Message: &tele.Message{Text: "ciao"}},
			expected: domain.EventPlainText,
		},
		{
			name:     "callback",
			update:   tele.Update{Callback: &tele.Callback{Unique: "vocab_colors"}},
			expected: domain.EventButtonPress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UpdateKind(newContext(tt.update)))
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	mw := LoggingMiddleware(m, testutil.NewTestLogger())

	var requestID interface{}
	handler := mw(func(c tele.Context) error {
		requestID = c.Get(RequestIDKey)
		return nil
	})

	c := newContext(tele.Update{Message: &tele.Message{
		Text:   "/help",
		Sender: &tele.User{ID: 1},
		Chat:   &tele.Chat{ID: 1},
	}})
	require.NoError(t, handler(c))

	id, ok := requestID.(string)
	require.True(t, ok)
	assert.Len(t, id, 36)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.UpdatesProcessed.WithLabelValues("command")))
}

func TestLoggingMiddleware_CountsErrors(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	mw := LoggingMiddleware(m, testutil.NewTestLogger())

	boom := errors.New("boom")
	err := mw(func(tele.Context) error { return boom })(newContext(tele.Update{Message: &tele.Message{Text: "ciao"}}))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.ErrorsTotal))
}
