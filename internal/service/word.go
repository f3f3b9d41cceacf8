package service

import (
	"fmt"

	"italiano/internal/domain"
	"italiano/internal/repository"
	"italiano/internal/vocabulary"
)

// WordService handles vocabulary lookups and daily words
type WordService struct {
	vocab *vocabulary.Store
	state repository.StateRepository
	clock Clock
}

// NewWordService creates a new word service
func NewWordService(vocab *vocabulary.Store, state repository.StateRepository, clock Clock) *WordService {
	return &WordService{
		vocab: vocab,
		state: state,
		clock: clock,
	}
}

// Words returns the table of a known category
func (s *WordService) Words(c vocabulary.Category) ([]domain.WordPair, error) {
	return s.vocab.Lookup(c)
}

// CategoryWords resolves a category by name and returns its table
func (s *WordService) CategoryWords(name string) (vocabulary.Category, []domain.WordPair, error) {
	c, err := vocabulary.ParseCategory(name)
	if err != nil {
		return "", nil, err
	}
	words, err := s.vocab.Lookup(c)
	if err != nil {
		return "", nil, err
	}
	return c, words, nil
}

// QuizWord returns the first entry of the category in its defined order
func (s *WordService) QuizWord(name string) (domain.WordPair, error) {
	c, words, err := s.CategoryWords(name)
	if err != nil {
		return domain.WordPair{}, err
	}
	if len(words) == 0 {
		return domain.WordPair{}, fmt.Errorf("category %q is empty", c)
	}
	return words[0], nil
}

// DailyWords returns today's batch for the user and whether it is new
func (s *WordService) DailyWords(userID int64) (domain.DailyWords, bool) {
	return s.state.GetOrCreateDailyWords(userID, s.clock.Today(), s.vocab.Sample)
}
