// Package api contains the API routes for the Aethelgard Community API
package api

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aethelgard/aethelgardapi/internal/api/handlers"
	"github.com/aethelgard/aethelgardapi/internal/api/middleware"
	"github.com/aethelgard/aethelgardapi/internal/config"
	"github.com/aethelgard/aethelgardapi/internal/repository"
	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/redis/go-redis/v9"
)

// SetupRoutes configures the routes for the API. The repository set is built
// once by the caller so every consumer shares the per-collection locks.
func SetupRoutes(e *echo.Echo, cfg *config.Config, repos *repository.Repositories, redisClient *redis.Client) {

	// Services
	tokenService := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(repos.Users, repos.Accounts, tokenService, cfg.AdminEmails)
	profileService := service.NewProfileService(repos.Users, repos.Accounts, tokenService, cfg.AdminEmails)
	forumService := service.NewForumService(repos.Forum)
	eventService := service.NewEventService(repos.Events)
	userService := service.NewUserService(repos.Users)
	rankingService := service.NewRankingService(repos.Characters, redisClient, cfg.UploadsDir)
	chatService := service.NewChatService(cfg.OpenAIAPIKey, cfg.OpenAIModel, rankingService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	forumHandler := handlers.NewForumHandler(forumService)
	eventHandler := handlers.NewEventHandler(eventService)
	userHandler := handlers.NewUserHandler(userService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Route-level middleware
	authRequired := middleware.AuthMiddleware(tokenService)
	adminRequired := middleware.AdminMiddleware(authService)

	// Create a group for all API routes, rate limited per client address
	api := e.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.APIRateLimit, 15*time.Minute))

	// Index and health routes
	api.GET("/", indexRoute(cfg))
	api.GET("/health", rankingHandler.Health)

	// Uploaded character portraits
	api.Static("/uploads", cfg.UploadsDir)

	// Auth routes (tighter limits on login and signup)
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authHandler.Signup, middleware.RateLimitMiddleware(cfg.SignupRateLimit, time.Hour))
	authGroup.POST("/login", authHandler.Login, middleware.RateLimitMiddleware(cfg.LoginRateLimit, 15*time.Minute))
	authGroup.POST("/login-game", authHandler.LoginGame)
	authGroup.GET("/me", authHandler.Me, authRequired)

	// Profile routes (protected)
	profileGroup := api.Group("/profile", authRequired)
	profileGroup.POST("/avatar", profileHandler.UpdateAvatar)
	profileGroup.POST("/email", profileHandler.UpdateEmail)
	profileGroup.POST("/gamename", profileHandler.UpdateGameName)

	// Forum routes (writes need a token)
	forumGroup := api.Group("/forum")
	forumGroup.GET("/threads", forumHandler.ListThreads)
	forumGroup.POST("/threads", forumHandler.CreateThread, authRequired)
	forumGroup.GET("/threads/:id", forumHandler.GetThread)
	forumGroup.POST("/threads/:id/replies", forumHandler.AddReply, authRequired)

	// Event routes (writes pass the admin gate)
	api.GET("/events", eventHandler.List)
	api.POST("/events", eventHandler.Create, authRequired, adminRequired)
	api.PUT("/events/:id", eventHandler.Update, authRequired, adminRequired)
	api.DELETE("/events/:id", eventHandler.Delete, authRequired, adminRequired)

	// Admin console routes
	adminGroup := api.Group("/admin", authRequired, adminRequired)
	adminGroup.GET("/users", userHandler.ListUsers)
	adminGroup.PUT("/users/:id/admin", userHandler.SetAdmin)

	// Public user listing
	api.GET("/users/recent", userHandler.Recent)

	// Ranking routes
	api.GET("/ranking/top", rankingHandler.Top)
	api.GET("/players/online", rankingHandler.Online)

	// Chatbot route
	api.POST("/chat", chatHandler.Send)
}

// indexRoute sets up the index route for the API
func indexRoute(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		message := fmt.Sprintf("%s %s", cfg.APIName, cfg.APIVersion)
		return response.SuccessResponse(c, message)
	}
}
