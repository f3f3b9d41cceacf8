package domain

// MaxHistoryTurns is how many conversation turns are kept per user
const MaxHistoryTurns = 10

// DailyWordCount is the size of a daily word batch
const DailyWordCount = 5

// Role identifies who authored a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message of a tutor conversation
type Turn struct {
	Role Role
	Text string
}

// Level is a CEFR proficiency level
type Level string

const LevelA2 Level = "A2"

// Progress holds user's learning counters
type Progress struct {
	WordsLearned  int
	Conversations int
	Level         Level
	StreakDays    int
}

// NewProgress returns zeroed counters at the default level
func NewProgress() Progress {
	return Progress{Level: LevelA2}
}

// DailyWords is the batch of words issued to a user on a given day
type DailyWords struct {
	Day   Day
	Words []WordPair
}
