package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves all questions in id order
	List(ctx context.Context) ([]Question, error)

	// ListByCategory retrieves all questions belonging to a category
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// Search retrieves questions whose text contains the term,
	// case-insensitively
	Search(ctx context.Context, term string) ([]Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create inserts a new question and assigns its id
	Create(ctx context.Context, question *Question) error

	// Delete removes a question
	Delete(ctx context.Context, id int) error

	// FirstUnseen retrieves the first question of a category, in id
	// order, whose id is not in seen. Returns nil when none remain.
	FirstUnseen(ctx context.Context, categoryID int, seen []int) (*Question, error)
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}
