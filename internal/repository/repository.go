package repository

import (
	"italiano/internal/domain"
)

// Sampler produces n vocabulary pairs for a daily batch
type Sampler func(n int) []domain.WordPair

// StateRepository defines per-user state operations.
// Reads of unknown users return defaults.
type StateRepository interface {
	TutorMode(userID int64) bool
	SetTutorMode(userID int64, enabled bool)

	History(userID int64) []domain.Turn
	AppendHistory(userID int64, turns ...domain.Turn)

	// GetOrCreateDailyWords returns the batch issued today, sampling and
	// storing a fresh one if the stored batch is from another day. The
	// boolean reports whether a fresh batch was created.
	GetOrCreateDailyWords(userID int64, today domain.Day, sample Sampler) (domain.DailyWords, bool)

	GetOrCreateProgress(userID int64) domain.Progress
	IncrementConversations(userID int64)

	// UserCount returns how many users have any state
	UserCount() int
}
