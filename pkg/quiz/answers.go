package quiz

import (
	"errors"
	"sync"

	"github.com/clarity-tools/clarity-plan/pkg/models/domain"
)

// ErrInvalidRating is returned when a rating falls outside the 1-5 scale.
var ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

// AnswerSheet records one rating per question id. It does not check ids
// against the bank; completion is judged purely by distinct-answer count.
type AnswerSheet struct {
	mu     sync.RWMutex
	total  int
	values domain.Answers
}

// NewAnswerSheet returns an empty sheet that is complete once total distinct
// questions have been answered.
func NewAnswerSheet(total int) *AnswerSheet {
	return &AnswerSheet{
		total:  total,
		values: make(domain.Answers),
	}
}

// Set records a rating for a question, overwriting any prior value.
func (s *AnswerSheet) Set(questionID string, rating int) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[questionID] = rating
	return nil
}

// Count is the number of distinct answered questions.
func (s *AnswerSheet) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Total is the number of answers required for completion.
func (s *AnswerSheet) Total() int {
	return s.total
}

// Complete reports whether every question has been answered.
func (s *AnswerSheet) Complete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values) == s.total
}

// Snapshot returns an independent copy of the recorded answers.
func (s *AnswerSheet) Snapshot() domain.Answers {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(domain.Answers, len(s.values))
	for id, rating := range s.values {
		out[id] = rating
	}
	return out
}

// Reset discards all recorded answers.
func (s *AnswerSheet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(domain.Answers)
}
