package render

import (
	"fmt"

	"italiano/internal/domain"
	"italiano/internal/vocabulary"
)

// Fixed replies
const (
	VocabularyPrompt = "📚 Choose a vocabulary category:"
	QuizMenuPrompt   = "🎯 Choose a quiz category:"

	AskUsage       = "🤖 Please add a question after the command, e.g. /ask How do I use the passato prossimo?"
	UnknownCommand = "🤔 I don't know that command. Use /help to see what I can do."
	UnknownTopic   = "🤔 I don't know that category. Use /vocabulary or /quiz to pick one."

	AskThinking       = "🤖 Thinking..."
	TutorThinking     = "👨‍🏫 Thinking..."
	HoroscopeThinking = "🔮 Reading the stars..."

	AskUnavailable       = "❌ ChatGPT features are not available. Please set OPENAI_API_KEY in your environment."
	TutorUnavailable     = "❌ Tutor mode is not available. Please set OPENAI_API_KEY in your environment."
	HoroscopeUnavailable = "❌ Horoscope feature requires OpenAI API key."

	AskFailed       = "❌ Sorry, I couldn't process your question. Please try again later."
	TutorFailed     = "❌ Sorry, I couldn't process your message. Please try again."
	HoroscopeFailed = "❌ Sorry, I couldn't read the stars today. Try again later!"

	TutorEnabled  = "👨‍🏫 Tutor mode enabled! Now you can chat with your AI Italian teacher. Just send me any message and I'll respond as your Italian tutor. Use /tutor again to disable this mode."
	TutorDisabled = "👨‍🏫 Tutor mode disabled. Use /tutor to enable again."

	DailyWordsRepeat = "📚 You already got today's words! Here they are again:"
)

// Welcome greets the user by first name
func Welcome(firstName string) string {
	return fmt.Sprintf(`🇮🇹 Ciao %s! Benvenuto al tuo tutor italiano!

I'm here to help you learn Italian! Here's what I can do:

📚 /vocabulary - Learn Italian vocabulary
🔢 /numbers - Practice Italian numbers
🎨 /colors - Learn Italian colors
🎯 /quiz - Take a vocabulary quiz
🤖 /ask - Ask ChatGPT about Italian (requires OpenAI API key)
👨‍🏫 /tutor - Enable AI tutor mode (chat with Italian teacher)
📚 /daily_words - Get today's 5 new Italian words
🔮 /horoscope - Get your daily horoscope in Italian
📊 /progress - Check your learning progress
ℹ️ /help - Show this help message

Let's start your Italian learning journey! 🚀`, firstName)
}

// Help lists every command
func Help() string {
	return `🇮🇹 Italian Learning Bot - Help

Available commands:
/start - Start the bot and see welcome message
/vocabulary - Learn basic Italian vocabulary
/numbers - Practice Italian numbers
/colors - Learn Italian colors
/quiz - Take a vocabulary quiz
/ask <question> - Ask ChatGPT about Italian
/tutor - Enable AI tutor mode (chat with Italian teacher)
/daily_words - Get today's 5 new Italian words
/horoscope - Get your daily horoscope in Italian
/progress - Check your learning progress
/help - Show this help message

Choose a topic and start learning! 📖`
}

// Answer prefixes an assistant reply with its feature icon
func Answer(icon, text string) string {
	return icon + " " + text
}

// VocabularyKeyboard offers the basic categories as vocab_ buttons
func VocabularyKeyboard() *domain.Keyboard {
	return categoryKeyboard("vocab_", "")
}

// QuizKeyboard offers the basic categories as quiz_ buttons
func QuizKeyboard() *domain.Keyboard {
	return categoryKeyboard("quiz_", " Quiz")
}

// categoryKeyboard lays the basic categories out two per row
func categoryKeyboard(prefix, suffix string) *domain.Keyboard {
	kb := &domain.Keyboard{}
	var row []domain.Button
	for _, c := range vocabulary.BasicCategories {
		row = append(row, domain.Button{
			Text:    fmt.Sprintf("%s %s%s", c.Emoji(), c.Title(), suffix),
			Payload: prefix + string(c),
		})
		if len(row) == 2 {
			kb.Rows = append(kb.Rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		kb.Rows = append(kb.Rows, row)
	}
	return kb
}
