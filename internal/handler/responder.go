package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"italiano/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// messenger is the part of *tele.Bot used to deliver actions
type messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// chatResponder delivers actions through the Telegram API
type chatResponder struct {
	api    messenger
	logger *zap.Logger
}

// Respond sends or edits a message. A failed edit falls back to a new message.
func (r *chatResponder) Respond(ctx context.Context, action domain.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var opts []interface{}
	if markup := inlineMarkup(action.Keyboard); markup != nil {
		opts = append(opts, markup)
	}

	if action.Kind == domain.ActionEdit {
		msg := tele.StoredMessage{
			MessageID: strconv.Itoa(action.MessageID),
			ChatID:    action.ChatID,
		}
		_, err := r.api.Edit(msg, action.Text, opts...)
		if err == nil {
			return nil
		}
		// Already showing this text, e.g. the same button pressed twice
		if isNotModified(err) {
			r.logger.Debug("Message already modified, skipping edit",
				zap.Int64("chat_id", action.ChatID),
				zap.Int("message_id", action.MessageID),
			)
			return nil
		}
		r.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("chat_id", action.ChatID),
			zap.Int("message_id", action.MessageID),
		)
	}

	if _, err := r.api.Send(tele.ChatID(action.ChatID), action.Text, opts...); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// inlineMarkup converts a keyboard to telebot inline markup
func inlineMarkup(kb *domain.Keyboard) *tele.ReplyMarkup {
	if kb == nil || len(kb.Rows) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(kb.Rows))
	for _, buttons := range kb.Rows {
		row := make(tele.Row, 0, len(buttons))
		for _, b := range buttons {
			row = append(row, markup.Data(b.Text, b.Payload))
		}
		rows = append(rows, row)
	}
	markup.Inline(rows...)
	return markup
}

func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}
