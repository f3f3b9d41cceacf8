package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ErrTransportConflict means another instance is polling with the same token
var ErrTransportConflict = errors.New("terminated by other getUpdates request")

// DefaultRetryDelay is the pause after a failed getUpdates call
const DefaultRetryDelay = 5 * time.Second

// ConflictPoller is a long poller that stops on HTTP 409 instead of retrying
type ConflictPoller struct {
	Timeout    time.Duration
	RetryDelay time.Duration

	logger   *zap.Logger
	lastID   int
	conflict chan error
	once     sync.Once

	// fetch is replaced in tests
	fetch func(b *tele.Bot, offset int, timeout time.Duration) ([]tele.Update, error)
}

// NewConflictPoller creates a poller with the given long-poll timeout
func NewConflictPoller(timeout time.Duration, logger *zap.Logger) *ConflictPoller {
	return &ConflictPoller{
		Timeout:    timeout,
		RetryDelay: DefaultRetryDelay,
		logger:     logger,
		conflict:   make(chan error, 1),
		fetch:      getUpdates,
	}
}

// Conflict receives ErrTransportConflict once polling has been taken over
func (p *ConflictPoller) Conflict() <-chan error {
	return p.conflict
}

// Poll implements tele.Poller
func (p *ConflictPoller) Poll(b *tele.Bot, dest chan tele.Update, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		updates, err := p.fetch(b, p.lastID+1, p.Timeout)
		if err != nil {
			if isConflict(err) {
				p.logger.Error("Another bot instance is polling updates", zap.Error(err))
				p.once.Do(func() {
					p.conflict <- fmt.Errorf("%w: %v", ErrTransportConflict, err)
				})
				return
			}

			p.logger.Warn("Failed to get updates, retrying",
				zap.Error(err),
				zap.Duration("delay", p.RetryDelay),
			)
			select {
			case <-stop:
				return
			case <-time.After(p.RetryDelay):
			}
			continue
		}

		for _, update := range updates {
			p.lastID = update.ID
			select {
			case dest <- update:
			case <-stop:
				return
			}
		}
	}
}

// getUpdates calls the getUpdates method through the raw API
func getUpdates(b *tele.Bot, offset int, timeout time.Duration) ([]tele.Update, error) {
	params := map[string]interface{}{
		"offset":  offset,
		"timeout": int(timeout / time.Second),
	}

	data, err := b.Raw("getUpdates", params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Result []tele.Update `json:"result"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}
	return resp.Result, nil
}

// isConflict reports whether err is Telegram's 409 reply
func isConflict(err error) bool {
	var tgErr *tele.Error
	if errors.As(err, &tgErr) && tgErr.Code == http.StatusConflict {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "(409)") || strings.Contains(msg, ErrTransportConflict.Error())
}
