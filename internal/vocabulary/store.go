package vocabulary

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"italiano/internal/domain"
)

// Store serves the static vocabulary tables
type Store struct {
	union []domain.WordPair

	mu  sync.Mutex
	rng *rand.Rand
}

// NewStore creates a store drawing samples from rng.
// A nil rng uses a randomly seeded generator.
func NewStore(rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Store{
		union: intermediateUnion(),
		rng:   rng,
	}
}

// Lookup returns a copy of the category's table in its defined order
func (s *Store) Lookup(c Category) ([]domain.WordPair, error) {
	words, ok := tables[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	out := make([]domain.WordPair, len(words))
	copy(out, words)
	return out, nil
}

// Sample draws n distinct pairs from the intermediate tier.
// Asking for more than the tier holds returns all of it.
func (s *Store) Sample(n int) []domain.WordPair {
	if n <= 0 {
		return nil
	}
	if n > len(s.union) {
		n = len(s.union)
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(s.union))
	s.mu.Unlock()

	out := make([]domain.WordPair, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, s.union[idx])
	}
	return out
}

// UnionSize returns how many distinct pairs Sample draws from
func (s *Store) UnionSize() int {
	return len(s.union)
}

func intermediateUnion() []domain.WordPair {
	seen := make(map[string]bool)
	var union []domain.WordPair
	for _, c := range IntermediateCategories {
		for _, w := range tables[c] {
			if seen[w.Word] {
				continue
			}
			seen[w.Word] = true
			union = append(union, w)
		}
	}
	return union
}
