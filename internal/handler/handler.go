package handler

import (
	"context"
	"strings"
	"unicode"

	"italiano/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler adapts Telegram updates to dispatcher events
type Handler struct {
	ctx        context.Context
	bot        *tele.Bot
	dispatcher *Dispatcher
	logger     *zap.Logger
}

// NewHandler creates a new handler instance. ctx bounds every dispatch.
func NewHandler(
	ctx context.Context,
	bot *tele.Bot,
	dispatcher *Dispatcher,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		ctx:        ctx,
		bot:        bot,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers. Commands arrive as text so
// unknown ones still reach the dispatcher.
func (h *Handler) RegisterHandlers() {
	// Commands and plain text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// handleText handles commands and plain text
func (h *Handler) handleText(c tele.Context) error {
	sender, chat := c.Sender(), c.Chat()
	if sender == nil || chat == nil {
		return nil
	}

	ev := domain.Event{
		Kind:      domain.EventPlainText,
		UserID:    sender.ID,
		ChatID:    chat.ID,
		FirstName: sender.FirstName,
		Text:      c.Text(),
	}
	if name, arg, ok := parseCommand(ev.Text); ok {
		ev.Kind = domain.EventCommand
		ev.Name = name
		ev.Argument = arg
	}

	h.dispatch(ev)
	return nil
}

// dispatch runs the dispatcher and logs delivery failures
func (h *Handler) dispatch(ev domain.Event) {
	r := &chatResponder{api: h.bot, logger: h.logger}
	if err := h.dispatcher.Dispatch(h.ctx, ev, r); err != nil {
		h.logger.Error("Failed to deliver reply",
			zap.Int64("user_id", ev.UserID),
			zap.String("kind", ev.Kind.String()),
			zap.Error(err),
		)
	}
}

// parseCommand splits "/name@bot argument" into name and argument
func parseCommand(text string) (name, arg string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}

	head, rest := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		head, rest = text[:i], text[i+1:]
	}
	name, _, _ = strings.Cut(strings.TrimPrefix(head, "/"), "@")
	return name, strings.TrimSpace(rest), true
}
