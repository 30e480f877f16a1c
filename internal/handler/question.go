package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/kbenzi/trivia/internal/domain"
	"github.com/kbenzi/trivia/internal/service"
)

// QuestionHandler handles category and question HTTP requests
type QuestionHandler struct {
	questionService *service.QuestionService
	validate        *validator.Validate
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		validate:        validator.New(),
	}
}

// Register registers the category and question routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.ListCategories)
	e.GET("/categories/:id/questions", h.ListByCategory)
	e.GET("/questions", h.ListQuestions)
	e.POST("/questions", h.CreateOrSearch)
	e.DELETE("/questions/:id", h.Delete)
}

// CreateQuestionRequest represents the request to create a new question.
// Pointer fields distinguish an absent attribute from a zero one; zero
// difficulty and zero category are accepted, empty text is not.
type CreateQuestionRequest struct {
	Question   *string `json:"question" validate:"required,min=1"`
	Answer     *string `json:"answer" validate:"required,min=1"`
	Difficulty *int    `json:"difficulty" validate:"required"`
	Category   *int    `json:"category" validate:"required"`
}

// questionPostRequest is the discriminated body of POST /questions: a
// search_term selects the search operation, anything else is a creation.
type questionPostRequest struct {
	SearchTerm *string `json:"search_term"`
	CreateQuestionRequest
}

type categoriesResponse struct {
	Success       bool              `json:"success"`
	Categories    []domain.Category `json:"categories"`
	CategoriesAll int               `json:"categories_all"`
}

type questionsResponse struct {
	Success      bool              `json:"success"`
	Questions    []domain.Question `json:"questions"`
	QuestionsAll int               `json:"questions_all"`
	Categories   []domain.Category `json:"categories"`
}

type categoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	QuestionsAll    int               `json:"questions_all"`
	CurrentCategory int               `json:"current_category"`
}

type searchResponse struct {
	Success      bool              `json:"success"`
	Questions    []domain.Question `json:"questions"`
	QuestionsAll int               `json:"questions_all"`
}

type createdResponse struct {
	Success bool             `json:"success"`
	Created *domain.Question `json:"created"`
}

type deletedResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

// ListCategories handles GET /categories
func (h *QuestionHandler) ListCategories(c echo.Context) error {
	result, err := h.questionService.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, categoriesResponse{
		Success:       true,
		Categories:    result.Categories,
		CategoriesAll: result.Total,
	})
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	result, err := h.questionService.ListQuestions(c.Request().Context(), pageParam(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, questionsResponse{
		Success:      true,
		Questions:    result.Questions,
		QuestionsAll: result.Total,
		Categories:   result.Categories,
	})
}

// ListByCategory handles GET /categories/:id/questions
func (h *QuestionHandler) ListByCategory(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	result, err := h.questionService.ListByCategory(c.Request().Context(), categoryID, pageParam(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		QuestionsAll:    result.Total,
		CurrentCategory: result.CategoryID,
	})
}

// CreateOrSearch handles POST /questions, dispatching on the request variant
func (h *QuestionHandler) CreateOrSearch(c echo.Context) error {
	var req questionPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	if req.SearchTerm != nil {
		return h.search(c, *req.SearchTerm)
	}
	return h.create(c, req.CreateQuestionRequest)
}

func (h *QuestionHandler) search(c echo.Context, term string) error {
	result, err := h.questionService.Search(c.Request().Context(), term, pageParam(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, searchResponse{
		Success:      true,
		Questions:    result.Questions,
		QuestionsAll: result.Total,
	})
}

func (h *QuestionHandler) create(c echo.Context, req CreateQuestionRequest) error {
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	question, err := h.questionService.CreateQuestion(c.Request().Context(), service.CreateQuestionParams{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Difficulty: *req.Difficulty,
		Category:   *req.Category,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, createdResponse{
		Success: true,
		Created: question,
	})
}

// Delete handles DELETE /questions/:id
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	deleted, err := h.questionService.DeleteQuestion(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, deletedResponse{
		Success: true,
		Deleted: deleted,
	})
}

// pageParam reads the 1-based page query parameter, defaulting to the first
// page when absent or unparseable.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}
