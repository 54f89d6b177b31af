package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/memento-app/memento-api/internal/api/handler"
	"github.com/memento-app/memento-api/internal/api/middleware"
	"github.com/memento-app/memento-api/internal/core/service"
	mongodb "github.com/memento-app/memento-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("memento"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	storyRepo := mongodb.NewStoryRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	tokenService := service.NewTokenService(jwtSecret, 0)
	authService := service.NewAuthService(userRepo, tokenService, log)
	storyService := service.NewStoryService(storyRepo, userRepo, log)
	commentService := service.NewCommentService(commentRepo, storyRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	storyHandler := handler.NewStoryHandler(storyService)
	commentHandler := handler.NewCommentHandler(commentService)
	protect := middleware.Auth(tokenService, userRepo)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/auth/signup", authHandler.Signup)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/verify", authHandler.Verify, protect)

	apiGroup.GET("/stories", storyHandler.List, protect)
	apiGroup.GET("/stories/:id", storyHandler.Get)
	apiGroup.POST("/stories", storyHandler.Create, protect)
	apiGroup.PUT("/stories/:id", storyHandler.Update, protect)
	apiGroup.DELETE("/stories/:id", storyHandler.Delete, protect)
	apiGroup.PUT("/stories/:id/like", storyHandler.ToggleLike, protect)

	apiGroup.GET("/stories/:id/comments", commentHandler.ListForStory)
	apiGroup.POST("/stories/:id/comments", commentHandler.Create, protect)
	apiGroup.DELETE("/comments/:id", commentHandler.Delete, protect)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
