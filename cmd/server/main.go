// Package main is the entry point for the Aethelgard Community API
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/aethelgard/aethelgardapi/internal/api"
	"github.com/aethelgard/aethelgardapi/internal/api/middleware"
	"github.com/aethelgard/aethelgardapi/internal/config"
	"github.com/aethelgard/aethelgardapi/internal/repository"
	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
)

func main() {
	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Print the configuration
	fmt.Println(cfg.String())

	// Init logger
	if err := zaplogger.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Setup logger
	defer zaplogger.Sync()
	zaplogger.SetLogLevel(cfg.ServerLogLevel)

	// Connect to the game databases (characters + auth)
	gameDB, err := repository.ConnectGameDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to game databases: %v", err)
	}

	// Connect Redis
	redisClient, err := repository.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Open the flat-file document store
	store, err := repository.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	// Character portraits are served from uploads/characters
	if err := os.MkdirAll(filepath.Join(cfg.UploadsDir, "characters"), 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	// One repository instance per collection, shared by every consumer so the
	// per-collection write serialization holds
	repos := repository.NewRepositories(store, gameDB)

	// Seed the forum policy thread
	forumService := service.NewForumService(repos.Forum)
	if err := forumService.EnsurePolicyThread(); err != nil {
		log.Fatalf("Failed to seed forum: %v", err)
	}

	// startUpMessage
	zaplogger.Info(cfg.APIName + " - " + cfg.APIVersion + " initialized")
	zaplogger.Info("Game databases initialized")
	zaplogger.Info("Redis initialized")
	zaplogger.Info("Document store initialized")

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupMiddleware(e, cfg)

	// Setup routes
	api.SetupRoutes(e, cfg, repos, redisClient)

	// Setup and start cron jobs
	cronService := service.NewCronService(cfg, repos, redisClient)
	// start cron jobs
	cronService.Start()

	// Start the server
	startServer(e, cfg)

}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	if port == "" {
		port = "4000"
	}
	zaplogger.Info("SERVER STARTED ON PORT " + port)
	e.Logger.Fatal(e.Start(":" + port))

}
