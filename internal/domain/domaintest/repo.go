// Package domaintest provides in-memory repository fakes for tests.
package domaintest

import (
	"context"
	"strings"

	"github.com/kbenzi/trivia/internal/domain"
)

// QuestionRepo is an in-memory domain.QuestionRepository. Questions are
// kept in insertion order, which doubles as id order for fixtures built
// through NewQuestionRepo or Create.
type QuestionRepo struct {
	Questions []domain.Question
	NextID    int
}

// NewQuestionRepo creates a question repo seeded with the given questions
func NewQuestionRepo(questions ...domain.Question) *QuestionRepo {
	nextID := 1
	for _, q := range questions {
		if q.ID >= nextID {
			nextID = q.ID + 1
		}
	}
	return &QuestionRepo{Questions: questions, NextID: nextID}
}

// List retrieves all questions
func (r *QuestionRepo) List(ctx context.Context) ([]domain.Question, error) {
	return append([]domain.Question(nil), r.Questions...), nil
}

// ListByCategory retrieves all questions belonging to a category
func (r *QuestionRepo) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	var out []domain.Question
	for _, q := range r.Questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

// Search retrieves questions whose text contains the term, case-insensitively
func (r *QuestionRepo) Search(ctx context.Context, term string) ([]domain.Question, error) {
	var out []domain.Question
	for _, q := range r.Questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepo) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	for _, q := range r.Questions {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

// Create inserts a new question and assigns its id
func (r *QuestionRepo) Create(ctx context.Context, question *domain.Question) error {
	question.ID = r.NextID
	r.NextID++
	r.Questions = append(r.Questions, *question)
	return nil
}

// Delete removes a question
func (r *QuestionRepo) Delete(ctx context.Context, id int) error {
	for i, q := range r.Questions {
		if q.ID == id {
			r.Questions = append(r.Questions[:i], r.Questions[i+1:]...)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

// FirstUnseen retrieves the first question of a category whose id is not in seen
func (r *QuestionRepo) FirstUnseen(ctx context.Context, categoryID int, seen []int) (*domain.Question, error) {
	for _, q := range r.Questions {
		if q.Category != categoryID {
			continue
		}
		excluded := false
		for _, id := range seen {
			if q.ID == id {
				excluded = true
				break
			}
		}
		if !excluded {
			q := q
			return &q, nil
		}
	}
	return nil, nil
}

// CategoryRepo is an in-memory domain.CategoryRepository. ListCalls counts
// how often the store was actually read, so cache tests can assert a warm
// cache never reaches it.
type CategoryRepo struct {
	Categories []domain.Category
	ListCalls  int
}

// List retrieves all categories
func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	r.ListCalls++
	return append([]domain.Category(nil), r.Categories...), nil
}
