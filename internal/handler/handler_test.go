package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbenzi/trivia/internal/domain"
	"github.com/kbenzi/trivia/internal/domain/domaintest"
	"github.com/kbenzi/trivia/internal/service"
)

func newTestServer(questions *domaintest.QuestionRepo, categories *domaintest.CategoryRepo) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler

	questionService := service.NewQuestionService(questions, categories)
	NewQuestionHandler(questionService).Register(e)
	NewQuizHandler(service.NewQuizService(questions)).Register(e)

	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sampleQuestions(n int) []domain.Question {
	out := make([]domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Question{
			ID:         i,
			Question:   "What is question number " + string(rune('0'+i%10)) + "?",
			Answer:     "answer",
			Difficulty: 1,
			Category:   1,
		})
	}
	return out
}

func TestGetCategories(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(), &domaintest.CategoryRepo{Categories: []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}})

	rec := doRequest(e, http.MethodGet, "/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["categories_all"])
	categories := body["categories"].([]any)
	require.Len(t, categories, 2)
	assert.Equal(t, "Science", categories[0].(map[string]any)["type"])
}

func TestGetCategories_EmptyStore(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodGet, "/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["categories_all"])
	assert.NotNil(t, body["categories"])
}

func TestGetQuestions(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(sampleQuestions(12)...), &domaintest.CategoryRepo{
		Categories: []domain.Category{{ID: 1, Type: "Science"}},
	})

	rec := doRequest(e, http.MethodGet, "/questions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(12), body["questions_all"])
	assert.Len(t, body["questions"].([]any), 10)
	assert.Len(t, body["categories"].([]any), 1)
}

func TestGetQuestions_SecondPage(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(sampleQuestions(12)...), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodGet, "/questions?page=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	questions := body["questions"].([]any)
	require.Len(t, questions, 2)
	assert.Equal(t, float64(11), questions[0].(map[string]any)["id"])
}

func TestGetQuestions_EmptyStore(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodGet, "/questions", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(404), body["error"])
	assert.Equal(t, "resource not found.", body["message"])
}

func TestGetQuestions_PageOutOfRange(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(sampleQuestions(12)...), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodGet, "/questions?page=9", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetQuestions_InvalidPage(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(sampleQuestions(12)...), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodGet, "/questions?page=0", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "unprocessable.", body["message"])
}

func TestGetQuestionsByCategory(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(
		domain.Question{ID: 1, Question: "q1", Answer: "a", Difficulty: 1, Category: 3},
		domain.Question{ID: 2, Question: "q2", Answer: "a", Difficulty: 1, Category: 5},
	), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodGet, "/categories/3/questions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["current_category"])
	assert.Equal(t, float64(1), body["questions_all"])
	assert.Len(t, body["questions"].([]any), 1)
}

func TestGetQuestionsByCategory_Empty(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(sampleQuestions(3)...), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodGet, "/categories/9/questions", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateQuestion(t *testing.T) {
	repo := domaintest.NewQuestionRepo()
	e := newTestServer(repo, &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodPost, "/questions",
		`{"question":"What is the scientific name for humans?","answer":"Homo sapiens","difficulty":3,"category":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	created := body["created"].(map[string]any)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Homo sapiens", created["answer"])

	stored, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "What is the scientific name for humans?", stored.Question)
}

func TestCreateQuestion_MissingFields(t *testing.T) {
	for name, payload := range map[string]string{
		"empty question": `{"question":"","answer":"a","difficulty":1,"category":1}`,
		"no answer":      `{"question":"q","difficulty":1,"category":1}`,
		"no difficulty":  `{"question":"q","answer":"a","category":1}`,
		"empty category": `{"question":"Q","answer":"A","difficulty":1,"category":""}`,
		"malformed body": `{"question":`,
		"empty body":     `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			repo := domaintest.NewQuestionRepo()
			e := newTestServer(repo, &domaintest.CategoryRepo{})

			rec := doRequest(e, http.MethodPost, "/questions", payload)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(422), body["error"])
			assert.Equal(t, "unprocessable.", body["message"])
			assert.Empty(t, repo.Questions)
		})
	}
}

func TestSearchQuestions(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(
		domain.Question{ID: 1, Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Difficulty: 2, Category: 2},
		domain.Question{ID: 2, Question: "What is the capital of France?", Answer: "Paris", Difficulty: 1, Category: 3},
	), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodPost, "/questions", `{"search_term":"MONA"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["questions_all"])
	questions := body["questions"].([]any)
	require.Len(t, questions, 1)
	assert.Equal(t, float64(1), questions[0].(map[string]any)["id"])
}

func TestSearchQuestions_NoMatches(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(sampleQuestions(5)...), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodPost, "/questions", `{"search_term":"xyz-no-match"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["questions_all"])
	questions, ok := body["questions"].([]any)
	require.True(t, ok, "questions must be a JSON array, not null")
	assert.Empty(t, questions)
}

func TestSearchQuestions_MatchesButEmptyPage(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(sampleQuestions(5)...), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodPost, "/questions?page=2", `{"search_term":"question"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteQuestion(t *testing.T) {
	repo := domaintest.NewQuestionRepo(sampleQuestions(3)...)
	e := newTestServer(repo, &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodDelete, "/questions/2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["deleted"])
	assert.Len(t, repo.Questions, 2)
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	repo := domaintest.NewQuestionRepo(sampleQuestions(3)...)
	e := newTestServer(repo, &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodDelete, "/questions/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "resource not found.", body["message"])
	assert.Len(t, repo.Questions, 3)
}

func TestQuiz_NextQuestion(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(
		domain.Question{ID: 5, Question: "q5", Answer: "a", Difficulty: 1, Category: 3},
		domain.Question{ID: 6, Question: "q6", Answer: "a", Difficulty: 1, Category: 3},
	), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodPost, "/quizzes",
		`{"quiz_category":{"id":3},"previous_questions":[5]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	question := body["question"].(map[string]any)
	assert.Equal(t, float64(6), question["id"])
}

func TestQuiz_Exhausted(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(
		domain.Question{ID: 5, Question: "q5", Answer: "a", Difficulty: 1, Category: 3},
	), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodPost, "/quizzes",
		`{"quiz_category":{"id":3},"previous_questions":[5]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	value, present := body["question"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestQuiz_PreviousQuestionsDefaultsEmpty(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(
		domain.Question{ID: 5, Question: "q5", Answer: "a", Difficulty: 1, Category: 3},
	), &domaintest.CategoryRepo{})

	rec := doRequest(e, http.MethodPost, "/quizzes", `{"quiz_category":{"id":3}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	question := body["question"].(map[string]any)
	assert.Equal(t, float64(5), question["id"])
}

func TestQuiz_MissingCategory(t *testing.T) {
	e := newTestServer(domaintest.NewQuestionRepo(sampleQuestions(2)...), &domaintest.CategoryRepo{})

	for name, payload := range map[string]string{
		"no quiz_category": `{"previous_questions":[1]}`,
		"empty body":       `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/quizzes", payload)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "unprocessable.", body["message"])
		})
	}
}
