package memory

import (
	"sync"

	"italiano/internal/domain"
	"italiano/internal/repository"
)

// userState is everything tracked for one user
type userState struct {
	tutorMode  bool
	history    []domain.Turn
	dailyWords *domain.DailyWords
	progress   *domain.Progress
}

// StateRepo implements repository.StateRepository in process memory
type StateRepo struct {
	users map[int64]*userState
	mux   sync.RWMutex
}

var _ repository.StateRepository = (*StateRepo)(nil)

// NewStateRepo creates an empty state table
func NewStateRepo() *StateRepo {
	return &StateRepo{users: make(map[int64]*userState)}
}

// user returns the record for userID, creating it. Caller holds the write lock.
func (r *StateRepo) user(userID int64) *userState {
	u, ok := r.users[userID]
	if !ok {
		u = &userState{}
		r.users[userID] = u
	}
	return u
}

// progressRecord returns the counters for u, creating them. Caller holds the write lock.
func (u *userState) progressRecord() *domain.Progress {
	if u.progress == nil {
		p := domain.NewProgress()
		u.progress = &p
	}
	return u.progress
}

// TutorMode reports whether tutor mode is on
func (r *StateRepo) TutorMode(userID int64) bool {
	r.mux.RLock()
	defer r.mux.RUnlock()

	u, ok := r.users[userID]
	return ok && u.tutorMode
}

// SetTutorMode switches tutor mode
func (r *StateRepo) SetTutorMode(userID int64, enabled bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.user(userID).tutorMode = enabled
}

// History returns a copy of the conversation, oldest first
func (r *StateRepo) History(userID int64) []domain.Turn {
	r.mux.RLock()
	defer r.mux.RUnlock()

	u, ok := r.users[userID]
	if !ok || len(u.history) == 0 {
		return nil
	}
	out := make([]domain.Turn, len(u.history))
	copy(out, u.history)
	return out
}

// AppendHistory appends turns and keeps only the most recent MaxHistoryTurns
func (r *StateRepo) AppendHistory(userID int64, turns ...domain.Turn) {
	if len(turns) == 0 {
		return
	}

	r.mux.Lock()
	defer r.mux.Unlock()

	u := r.user(userID)
	history := append(u.history, turns...)
	if over := len(history) - domain.MaxHistoryTurns; over > 0 {
		history = append([]domain.Turn(nil), history[over:]...)
	}
	u.history = history
}

// GetOrCreateDailyWords returns today's batch, sampling a new one on a new day
func (r *StateRepo) GetOrCreateDailyWords(userID int64, today domain.Day, sample repository.Sampler) (domain.DailyWords, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()

	u := r.user(userID)
	if u.dailyWords != nil && u.dailyWords.Day.Equal(today) {
		return copyBatch(*u.dailyWords), false
	}

	var previous domain.Day
	if u.dailyWords != nil {
		previous = u.dailyWords.Day
	}

	batch := domain.DailyWords{
		Day:   today,
		Words: sample(domain.DailyWordCount),
	}
	u.dailyWords = &batch

	p := u.progressRecord()
	p.WordsLearned += len(batch.Words)
	if !previous.IsZero() && previous.AddDays(1).Equal(today) {
		p.StreakDays++
	} else {
		p.StreakDays = 1
	}

	return copyBatch(batch), true
}

// GetOrCreateProgress returns the user's counters, zeroed on first access
func (r *StateRepo) GetOrCreateProgress(userID int64) domain.Progress {
	r.mux.Lock()
	defer r.mux.Unlock()
	return *r.user(userID).progressRecord()
}

// IncrementConversations counts one completed tutor exchange
func (r *StateRepo) IncrementConversations(userID int64) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.user(userID).progressRecord().Conversations++
}

// UserCount returns how many users have state
func (r *StateRepo) UserCount() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.users)
}

func copyBatch(b domain.DailyWords) domain.DailyWords {
	words := make([]domain.WordPair, len(b.Words))
	copy(words, b.Words)
	return domain.DailyWords{Day: b.Day, Words: words}
}
