package middleware

import (
	"strings"
	"time"

	"italiano/internal/domain"
	"italiano/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RequestIDKey is the context key holding the update's request id
const RequestIDKey = "request_id"

// LoggingMiddleware tags every update with a request id, logs it and records
// its handling time
func LoggingMiddleware(m *metrics.Metrics, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			requestID := uuid.NewString()
			c.Set(RequestIDKey, requestID)

			kind := UpdateKind(c)
			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.String("kind", kind.String()),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			m.ObserveUpdate(kind.String(), elapsed)
			fields = append(fields, zap.Duration("elapsed", elapsed))
			if err != nil {
				m.IncError()
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}

			logger.Info("Update handled", fields...)
			return nil
		}
	}
}

// UpdateKind classifies an update the way the dispatcher sees it
func UpdateKind(c tele.Context) domain.EventKind {
	if c.Callback() != nil {
		return domain.EventButtonPress
	}
	if strings.HasPrefix(strings.TrimSpace(c.Text()), "/") {
		return domain.EventCommand
	}
	return domain.EventPlainText
}
