package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kbenzi/trivia/internal/domain"
)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		pool: pool,
	}
}

// List retrieves all questions in id order
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, difficulty, category
		FROM questions
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// ListByCategory retrieves all questions belonging to a category
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, difficulty, category
		FROM questions
		WHERE category = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions by category: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// Search retrieves questions whose text contains the term, case-insensitively
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, difficulty, category
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	var question domain.Question
	err := r.pool.QueryRow(ctx, `
		SELECT id, question, answer, difficulty, category
		FROM questions
		WHERE id = $1
	`, id).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Difficulty,
		&question.Category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}

// Create inserts a new question and assigns its id
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (question, answer, difficulty, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		question.Question,
		question.Answer,
		question.Difficulty,
		question.Category,
	).Scan(&question.ID)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// Delete removes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM questions WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// FirstUnseen retrieves the first question of a category, in id order, whose
// id is not in seen. Selection is deliberately deterministic: quiz clients
// track served ids themselves, so store order is a stable tie-break.
func (r *QuestionRepository) FirstUnseen(ctx context.Context, categoryID int, seen []int) (*domain.Question, error) {
	var question domain.Question
	err := r.pool.QueryRow(ctx, `
		SELECT id, question, answer, difficulty, category
		FROM questions
		WHERE category = $1 AND id <> ALL($2)
		ORDER BY id
		LIMIT 1
	`, categoryID, seen).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Difficulty,
		&question.Category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unseen question: %w", err)
	}
	return &question, nil
}

func scanQuestions(rows pgx.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.Difficulty,
			&question.Category,
		); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}
