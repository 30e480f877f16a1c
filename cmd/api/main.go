package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kbenzi/trivia/internal/cache"
	"github.com/kbenzi/trivia/internal/database"
	"github.com/kbenzi/trivia/internal/domain"
	"github.com/kbenzi/trivia/internal/handler"
	"github.com/kbenzi/trivia/internal/repository/postgres"
	"github.com/kbenzi/trivia/internal/service"
)

func main() {
	// Initialize database connection
	pool, err := database.ConnectPostgres(database.NewPostgresConfig())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Initialize repositories
	questionRepo := postgres.NewQuestionRepository(pool)

	var categoryRepo domain.CategoryRepository = postgres.NewCategoryRepository(pool)

	// Wrap the category listing in a Redis cache when one is configured
	if redisCfg := database.NewRedisConfig(); redisCfg.Host != "" {
		redisClient, err := database.ConnectRedis(redisCfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		categoryRepo = cache.NewCategoryCache(redisClient, categoryRepo)
	}

	// Initialize services
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo)

	// Initialize handlers
	questionHandler := handler.NewQuestionHandler(questionService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Initialize Echo
	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Routes
	questionHandler.Register(e)
	quizHandler.Register(e)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
