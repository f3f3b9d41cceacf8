package handler

import (
	"strings"
	"unicode"

	"italiano/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackPayload returns the button payload. Buttons are built with the
// payload as Unique, older clients may deliver it only as raw data.
func callbackPayload(callback *tele.Callback) string {
	if callback.Unique != "" {
		return callback.Unique
	}
	return cleanCallbackData(callback.Data)
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	sender, chat := c.Sender(), c.Chat()
	if sender == nil || chat == nil || callback.Message == nil {
		h.logger.Warn("Callback without message", zap.String("id", callback.ID))
		return c.Respond()
	}

	payload := callbackPayload(callback)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("payload", payload),
		zap.String("data_raw", callback.Data),
		zap.String("id", callback.ID),
		zap.Int64("user_id", sender.ID),
	)

	h.dispatch(domain.Event{
		Kind:      domain.EventButtonPress,
		UserID:    sender.ID,
		ChatID:    chat.ID,
		FirstName: sender.FirstName,
		Payload:   payload,
		MessageID: callback.Message.ID,
	})

	// Always acknowledge the callback, even when nothing was sent
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return nil
}
