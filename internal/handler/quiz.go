package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/kbenzi/trivia/internal/domain"
	"github.com/kbenzi/trivia/internal/service"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	quizService *service.QuizService
	validate    *validator.Validate
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		validate:    validator.New(),
	}
}

// Register registers the quiz routes
func (h *QuizHandler) Register(e *echo.Echo) {
	e.POST("/quizzes", h.NextQuestion)
}

// QuizRequest represents the request for the next quiz question
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int         `json:"previous_questions"`
}

// QuizCategory selects the category the quiz runs over
type QuizCategory struct {
	ID int `json:"id"`
}

type quizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

// NextQuestion handles POST /quizzes. The response question is null once
// every question of the category has appeared in previous_questions; the
// client reads that as end-of-quiz.
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	question, err := h.quizService.NextQuestion(c.Request().Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, quizResponse{
		Success:  true,
		Question: question,
	})
}
