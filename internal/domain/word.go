package domain

// WordPair is an Italian term with its English translation
type WordPair struct {
	Word        string
	Translation string
}
