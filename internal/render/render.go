// Package render formats bot replies. Every function is pure.
package render

import (
	"fmt"
	"strings"

	"italiano/internal/domain"
	"italiano/internal/vocabulary"
)

// VocabularyTable renders a category as shown after a vocabulary button press
func VocabularyTable(c vocabulary.Category, words []domain.WordPair) string {
	return wordList(fmt.Sprintf("📚 %s Vocabulary:", c.Title()), words)
}

// TopicTable renders a category as shown by its own command, e.g. /numbers
func TopicTable(c vocabulary.Category, words []domain.WordPair) string {
	return wordList(fmt.Sprintf("%s Italian %s:", c.Emoji(), c.Title()), words)
}

// DailyWords renders a daily batch
func DailyWords(batch domain.DailyWords) string {
	var b strings.Builder
	b.WriteString(wordList("📚 Today's 5 New Italian Words (A2 Level):", batch.Words))
	b.WriteString("\n💡 Now try to create a sentence using these words! Use /tutor to practice with me.")
	return b.String()
}

// Progress renders the progress summary
func Progress(p domain.Progress) string {
	return fmt.Sprintf(`📊 Your Italian Learning Progress

🎯 Level: %s
📚 Words Learned: %d
💬 Conversations: %d
🔥 Streak: %d days

Keep up the great work! 🇮🇹`, p.Level, p.WordsLearned, p.Conversations, p.StreakDays)
}

// QuizPrompt asks for the translation of word
func QuizPrompt(word domain.WordPair) string {
	return fmt.Sprintf("🎯 Quiz: What does '%s' mean in English?", word.Word)
}

// wordList renders header, a blank line and one "• term = translation" line per pair
func wordList(header string, words []domain.WordPair) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for _, w := range words {
		fmt.Fprintf(&b, "• %s = %s\n", w.Word, w.Translation)
	}
	return b.String()
}
