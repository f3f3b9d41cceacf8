package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"italiano/internal/domain"
	"italiano/internal/metrics"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single assistant call
const DefaultTimeout = 30 * time.Second

// Gateway calls the language model with a fixed profile per feature.
// A Gateway without a provider is disabled and never makes a call.
type Gateway struct {
	provider Provider
	timeout  time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewGateway creates a gateway. provider may be nil.
func NewGateway(provider Provider, timeout time.Duration, m *metrics.Metrics, logger *zap.Logger) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		provider: provider,
		timeout:  timeout,
		metrics:  m,
		logger:   logger,
	}
}

// Enabled reports whether a provider is configured
func (g *Gateway) Enabled() bool {
	return g.provider != nil
}

// Invoke runs one completion for the profile
func (g *Gateway) Invoke(ctx context.Context, profile Profile, messages []Message) (string, error) {
	if g.provider == nil {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	text, err := g.provider.Complete(ctx, Request{
		System:      profile.System,
		Messages:    messages,
		MaxTokens:   profile.MaxTokens,
		Temperature: profile.Temperature,
	})
	elapsed := time.Since(start)

	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty completion")
	}
	if err != nil {
		g.metrics.ObserveAssistantCall(profile.Name, "error", elapsed)
		g.logger.Warn("Assistant call failed",
			zap.String("profile", profile.Name),
			zap.String("model", g.provider.ModelID()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return "", wrapError(profile, err)
	}

	g.metrics.ObserveAssistantCall(profile.Name, "ok", elapsed)
	g.logger.Debug("Assistant call completed",
		zap.String("profile", profile.Name),
		zap.Duration("elapsed", elapsed),
	)
	return text, nil
}

// Ask answers a free-form question
func (g *Gateway) Ask(ctx context.Context, question string) (string, error) {
	return g.Invoke(ctx, FreeQuestion, []Message{{Role: RoleUser, Content: question}})
}

// Tutor answers text in the context of the prior conversation
func (g *Gateway) Tutor(ctx context.Context, history []domain.Turn, text string) (string, error) {
	messages := make([]Message, 0, len(history)+1)
	for _, turn := range history {
		role := RoleUser
		if turn.Role == domain.RoleAssistant {
			role = RoleAssistant
		}
		messages = append(messages, Message{Role: role, Content: turn.Text})
	}
	messages = append(messages, Message{Role: RoleUser, Content: text})

	return g.Invoke(ctx, Tutor, messages)
}

// Horoscope writes the horoscope for day
func (g *Gateway) Horoscope(ctx context.Context, day domain.Day) (string, error) {
	prompt := fmt.Sprintf(
		"Give me a daily horoscope for today (%s) in Italian. Make it encouraging and include some Italian vocabulary.",
		day.DisplayString(),
	)
	return g.Invoke(ctx, Horoscope, []Message{{Role: RoleUser, Content: prompt}})
}

// Ping checks the credential with a minimal completion
func (g *Gateway) Ping(ctx context.Context) error {
	_, err := g.Invoke(ctx, ping, []Message{{Role: RoleUser, Content: "Hello"}})
	return err
}

func wrapError(profile Profile, err error) error {
	e := &Error{Profile: profile.Name, Err: err}
	var se *statusError
	if errors.As(err, &se) {
		e.StatusCode = se.code
	}
	if errors.Is(err, context.DeadlineExceeded) {
		e.Err = fmt.Errorf("timed out: %w", err)
	}
	return e
}
