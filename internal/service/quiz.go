package service

import (
	"context"

	"github.com/kbenzi/trivia/internal/domain"
)

// QuizService picks the next unseen question for a quiz round. It holds no
// session state: callers supply the ids already served and own the session
// entirely, so the call is read-only and safely repeatable.
type QuizService struct {
	questions domain.QuestionRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(questions domain.QuestionRepository) *QuizService {
	return &QuizService{
		questions: questions,
	}
}

// NextQuestion returns the first question of the category not in previous,
// or nil once the pool is exhausted. Exhaustion is a normal end-of-quiz
// signal, not an error.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	if previous == nil {
		previous = []int{}
	}
	return s.questions.FirstUnseen(ctx, categoryID, previous)
}
