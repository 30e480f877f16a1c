package service

import (
	"context"
	"errors"

	"github.com/kbenzi/trivia/internal/domain"
	"github.com/kbenzi/trivia/internal/pagination"
)

// QuestionService orchestrates question listing, search, and mutations.
type QuestionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
}

// NewQuestionService creates a new question service
func NewQuestionService(questions domain.QuestionRepository, categories domain.CategoryRepository) *QuestionService {
	return &QuestionService{
		questions:  questions,
		categories: categories,
	}
}

// CategoryList is the result of listing all categories.
type CategoryList struct {
	Categories []domain.Category
	Total      int
}

// QuestionPage is one page of questions together with the unpaginated
// total. Categories is populated only by ListQuestions; CategoryID only by
// ListByCategory.
type QuestionPage struct {
	Questions  []domain.Question
	Total      int
	Categories []domain.Category
	CategoryID int
}

// CreateQuestionParams holds the attributes of a question to insert.
type CreateQuestionParams struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

// ListCategories retrieves all categories. An empty store is a successful,
// empty listing.
func (s *QuestionService) ListCategories(ctx context.Context) (*CategoryList, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return &CategoryList{
		Categories: nonNil(categories),
		Total:      len(categories),
	}, nil
}

// ListQuestions retrieves one page of all questions plus the category
// listing. An empty page is ErrNotFound, including when the requested page
// is merely out of range of a non-empty store.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	paged, err := pagination.Page(page, questions)
	if err != nil {
		return nil, ErrUnprocessable
	}
	if len(paged) == 0 {
		return nil, ErrNotFound
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  paged,
		Total:      len(questions),
		Categories: nonNil(categories),
	}, nil
}

// ListByCategory retrieves one page of the questions in a category,
// with the same empty-page rule as ListQuestions.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID, page int) (*QuestionPage, error) {
	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	paged, err := pagination.Page(page, questions)
	if err != nil {
		return nil, ErrUnprocessable
	}
	if len(paged) == 0 {
		return nil, ErrNotFound
	}

	return &QuestionPage{
		Questions:  paged,
		Total:      len(questions),
		CategoryID: categoryID,
	}, nil
}

// Search retrieves one page of the questions whose text contains term,
// case-insensitively. Zero matches is a successful, empty result;
// ErrNotFound is raised only when matches exist but the requested page
// falls past them.
func (s *QuestionService) Search(ctx context.Context, term string, page int) (*QuestionPage, error) {
	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	paged, err := pagination.Page(page, matches)
	if err != nil {
		return nil, ErrUnprocessable
	}
	if len(matches) > 0 && len(paged) == 0 {
		return nil, ErrNotFound
	}

	return &QuestionPage{
		Questions: paged,
		Total:     len(matches),
	}, nil
}

// CreateQuestion validates and inserts a new question, returning it with
// its store-assigned id. Validation happens before any write; a rejected
// request stores nothing.
func (s *QuestionService) CreateQuestion(ctx context.Context, params CreateQuestionParams) (*domain.Question, error) {
	if params.Question == "" || params.Answer == "" {
		return nil, ErrUnprocessable
	}

	question := &domain.Question{
		Question:   params.Question,
		Answer:     params.Answer,
		Difficulty: params.Difficulty,
		Category:   params.Category,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// DeleteQuestion removes a question by id. Deleting an absent id is
// ErrNotFound and leaves the store unchanged.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id int) (int, error) {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	return id, nil
}

// nonNil keeps empty listings JSON-encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
