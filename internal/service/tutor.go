package service

import (
	"context"
	"errors"
	"strings"

	"italiano/internal/assistant"
	"italiano/internal/domain"
	"italiano/internal/repository"

	"go.uber.org/zap"
)

// ErrEmptyQuestion is returned by Ask for a blank question
var ErrEmptyQuestion = errors.New("question is empty")

// Assistant is the language model gateway as used by the services
type Assistant interface {
	Enabled() bool
	Ask(ctx context.Context, question string) (string, error)
	Tutor(ctx context.Context, history []domain.Turn, text string) (string, error)
	Horoscope(ctx context.Context, day domain.Day) (string, error)
}

// TutorService handles the assistant-backed features
type TutorService struct {
	assistant Assistant
	state     repository.StateRepository
	clock     Clock
	logger    *zap.Logger
}

// NewTutorService creates a new tutor service
func NewTutorService(a Assistant, state repository.StateRepository, clock Clock, logger *zap.Logger) *TutorService {
	return &TutorService{
		assistant: a,
		state:     state,
		clock:     clock,
		logger:    logger,
	}
}

// Enabled reports whether the assistant is configured
func (s *TutorService) Enabled() bool {
	return s.assistant.Enabled()
}

// TutorMode reports whether the user is in tutor mode
func (s *TutorService) TutorMode(userID int64) bool {
	return s.state.TutorMode(userID)
}

// ToggleTutor flips tutor mode and returns the new value
func (s *TutorService) ToggleTutor(userID int64) (bool, error) {
	if !s.assistant.Enabled() {
		return false, assistant.ErrUnavailable
	}
	enabled := !s.state.TutorMode(userID)
	s.state.SetTutorMode(userID, enabled)

	s.logger.Info("Tutor mode toggled",
		zap.Int64("user_id", userID),
		zap.Bool("enabled", enabled),
	)
	return enabled, nil
}

// Ask answers a free-form question
func (s *TutorService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}
	if !s.assistant.Enabled() {
		return "", assistant.ErrUnavailable
	}
	return s.assistant.Ask(ctx, question)
}

// Converse runs one tutor exchange. History and counters change only
// once the assistant has answered.
func (s *TutorService) Converse(ctx context.Context, userID int64, text string) (string, error) {
	if !s.assistant.Enabled() {
		return "", assistant.ErrUnavailable
	}

	history := s.state.History(userID)
	answer, err := s.assistant.Tutor(ctx, history, text)
	if err != nil {
		return "", err
	}

	s.state.AppendHistory(userID,
		domain.Turn{Role: domain.RoleUser, Text: text},
		domain.Turn{Role: domain.RoleAssistant, Text: answer},
	)
	s.state.IncrementConversations(userID)

	return answer, nil
}

// Horoscope returns today's horoscope
func (s *TutorService) Horoscope(ctx context.Context) (string, error) {
	if !s.assistant.Enabled() {
		return "", assistant.ErrUnavailable
	}
	return s.assistant.Horoscope(ctx, s.clock.Today())
}
