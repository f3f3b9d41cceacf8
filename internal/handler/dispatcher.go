package handler

import (
	"context"
	"errors"
	"strings"
	"sync"

	"italiano/internal/assistant"
	"italiano/internal/domain"
	"italiano/internal/metrics"
	"italiano/internal/render"
	"italiano/internal/service"
	"italiano/internal/vocabulary"

	"go.uber.org/zap"
)

// Button payload prefixes
const (
	vocabPrefix = "vocab"
	quizPrefix  = "quiz"
)

// Responder delivers actions to the chat as they are produced
type Responder interface {
	Respond(ctx context.Context, action domain.Action) error
}

// Dispatcher maps incoming events to actions
type Dispatcher struct {
	words   *service.WordService
	tutor   *service.TutorService
	stats   *service.StatsService
	metrics *metrics.Metrics
	logger  *zap.Logger

	// Per-user locks so one user's events are handled in order
	userLocks map[int64]*sync.Mutex
	lockMux   sync.Mutex
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(
	words *service.WordService,
	tutor *service.TutorService,
	stats *service.StatsService,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		words:     words,
		tutor:     tutor,
		stats:     stats,
		metrics:   m,
		logger:    logger,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// lockUser returns the user's mutex, locked
func (d *Dispatcher) lockUser(userID int64) *sync.Mutex {
	d.lockMux.Lock()
	lock, exists := d.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		d.userLocks[userID] = lock
	}
	d.lockMux.Unlock()

	lock.Lock()
	return lock
}

// Dispatch handles one event. The user's lock is held until every action
// has been delivered.
func (d *Dispatcher) Dispatch(ctx context.Context, ev domain.Event, r Responder) error {
	lock := d.lockUser(ev.UserID)
	defer lock.Unlock()

	switch ev.Kind {
	case domain.EventCommand:
		return d.handleCommand(ctx, ev, r)
	case domain.EventButtonPress:
		return d.handleButton(ctx, ev, r)
	case domain.EventPlainText:
		return d.handleText(ctx, ev, r)
	}

	d.logger.Warn("Unknown event kind", zap.Int("kind", int(ev.Kind)))
	return nil
}

func (d *Dispatcher) handleCommand(ctx context.Context, ev domain.Event, r Responder) error {
	d.logger.Info("Handling command",
		zap.Int64("user_id", ev.UserID),
		zap.String("command", ev.Name),
	)

	switch ev.Name {
	case "start":
		d.metrics.IncCommand(ev.Name)
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.Welcome(ev.FirstName)))
	case "help":
		d.metrics.IncCommand(ev.Name)
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.Help()))
	case "vocabulary":
		d.metrics.IncCommand(ev.Name)
		return r.Respond(ctx, domain.SendWithKeyboard(ev.ChatID, render.VocabularyPrompt, render.VocabularyKeyboard()))
	case "numbers":
		d.metrics.IncCommand(ev.Name)
		return d.sendTopic(ctx, ev, r, vocabulary.Numbers)
	case "colors":
		d.metrics.IncCommand(ev.Name)
		return d.sendTopic(ctx, ev, r, vocabulary.Colors)
	case "quiz":
		d.metrics.IncCommand(ev.Name)
		return r.Respond(ctx, domain.SendWithKeyboard(ev.ChatID, render.QuizMenuPrompt, render.QuizKeyboard()))
	case "ask":
		d.metrics.IncCommand(ev.Name)
		return d.handleAsk(ctx, ev, r)
	case "tutor":
		d.metrics.IncCommand(ev.Name)
		return d.handleToggleTutor(ctx, ev, r)
	case "daily_words":
		d.metrics.IncCommand(ev.Name)
		return d.handleDailyWords(ctx, ev, r)
	case "horoscope":
		d.metrics.IncCommand(ev.Name)
		return d.handleHoroscope(ctx, ev, r)
	case "progress":
		d.metrics.IncCommand(ev.Name)
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.Progress(d.stats.Progress(ev.UserID))))
	}

	d.metrics.IncCommand("unknown")
	return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.UnknownCommand))
}

// sendTopic sends a fixed category table
func (d *Dispatcher) sendTopic(ctx context.Context, ev domain.Event, r Responder, c vocabulary.Category) error {
	words, err := d.words.Words(c)
	if err != nil {
		d.logger.Error("Failed to load category", zap.String("category", string(c)), zap.Error(err))
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.UnknownTopic))
	}
	return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.TopicTable(c, words)))
}

func (d *Dispatcher) handleAsk(ctx context.Context, ev domain.Event, r Responder) error {
	if strings.TrimSpace(ev.Argument) == "" {
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.AskUsage))
	}
	if !d.tutor.Enabled() {
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.AskUnavailable))
	}

	if err := r.Respond(ctx, domain.SendMessage(ev.ChatID, render.AskThinking)); err != nil {
		return err
	}

	answer, err := d.tutor.Ask(ctx, ev.Argument)
	if err != nil {
		d.logger.Error("Failed to answer question", zap.Int64("user_id", ev.UserID), zap.Error(err))
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, assistantFailure(err, render.AskUnavailable, render.AskFailed)))
	}
	return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.Answer("🤖", answer)))
}

func (d *Dispatcher) handleToggleTutor(ctx context.Context, ev domain.Event, r Responder) error {
	enabled, err := d.tutor.ToggleTutor(ev.UserID)
	if err != nil {
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.TutorUnavailable))
	}
	if enabled {
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.TutorEnabled))
	}
	return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.TutorDisabled))
}

func (d *Dispatcher) handleDailyWords(ctx context.Context, ev domain.Event, r Responder) error {
	batch, fresh := d.words.DailyWords(ev.UserID)
	if !fresh {
		if err := r.Respond(ctx, domain.SendMessage(ev.ChatID, render.DailyWordsRepeat)); err != nil {
			return err
		}
	}
	return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.DailyWords(batch)))
}

func (d *Dispatcher) handleHoroscope(ctx context.Context, ev domain.Event, r Responder) error {
	if !d.tutor.Enabled() {
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.HoroscopeUnavailable))
	}

	if err := r.Respond(ctx, domain.SendMessage(ev.ChatID, render.HoroscopeThinking)); err != nil {
		return err
	}

	text, err := d.tutor.Horoscope(ctx)
	if err != nil {
		d.logger.Error("Failed to get horoscope", zap.Int64("user_id", ev.UserID), zap.Error(err))
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, assistantFailure(err, render.HoroscopeUnavailable, render.HoroscopeFailed)))
	}
	return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.Answer("🔮", text)))
}

func (d *Dispatcher) handleButton(ctx context.Context, ev domain.Event, r Responder) error {
	prefix, name, _ := strings.Cut(ev.Payload, "_")

	d.logger.Info("Handling button",
		zap.Int64("user_id", ev.UserID),
		zap.String("payload", ev.Payload),
	)

	switch prefix {
	case vocabPrefix:
		c, words, err := d.words.CategoryWords(name)
		if err != nil {
			return r.Respond(ctx, domain.EditMessage(ev.ChatID, ev.MessageID, render.UnknownTopic))
		}
		return r.Respond(ctx, domain.EditMessage(ev.ChatID, ev.MessageID, render.VocabularyTable(c, words)))
	case quizPrefix:
		word, err := d.words.QuizWord(name)
		if err != nil {
			return r.Respond(ctx, domain.EditMessage(ev.ChatID, ev.MessageID, render.UnknownTopic))
		}
		return r.Respond(ctx, domain.EditMessage(ev.ChatID, ev.MessageID, render.QuizPrompt(word)))
	}

	d.logger.Warn("Unhandled button payload",
		zap.Int64("user_id", ev.UserID),
		zap.String("payload", ev.Payload),
	)
	return nil
}

// handleText runs the tutor flow when tutor mode is on and ignores the text otherwise
func (d *Dispatcher) handleText(ctx context.Context, ev domain.Event, r Responder) error {
	if !d.tutor.TutorMode(ev.UserID) {
		return nil
	}
	if !d.tutor.Enabled() {
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.TutorUnavailable))
	}

	if err := r.Respond(ctx, domain.SendMessage(ev.ChatID, render.TutorThinking)); err != nil {
		return err
	}

	answer, err := d.tutor.Converse(ctx, ev.UserID, ev.Text)
	if err != nil {
		d.logger.Error("Tutor reply failed", zap.Int64("user_id", ev.UserID), zap.Error(err))
		return r.Respond(ctx, domain.SendMessage(ev.ChatID, assistantFailure(err, render.TutorUnavailable, render.TutorFailed)))
	}
	return r.Respond(ctx, domain.SendMessage(ev.ChatID, render.Answer("👨‍🏫", answer)))
}

// assistantFailure picks the reply for a failed assistant call
func assistantFailure(err error, unavailable, failed string) string {
	if errors.Is(err, assistant.ErrUnavailable) {
		return unavailable
	}
	return failed
}
