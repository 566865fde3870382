package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adamcc31/devconnect-api/config"
	_ "github.com/adamcc31/devconnect-api/docs" // Important for Swagger
	v1 "github.com/adamcc31/devconnect-api/internal/delivery/http/v1"
	"github.com/adamcc31/devconnect-api/internal/repository/postgres"
	"github.com/adamcc31/devconnect-api/internal/usecase"
	"github.com/adamcc31/devconnect-api/pkg/database"
	"github.com/adamcc31/devconnect-api/pkg/github"
	"github.com/adamcc31/devconnect-api/pkg/logger"
	"github.com/adamcc31/devconnect-api/pkg/redis"
	"github.com/adamcc31/devconnect-api/pkg/token"

	"github.com/go-playground/validator/v10"
)

// @title           DevConnect API
// @version         1.0
// @description     Developer network backend: profiles, account lifecycle, Github lookup.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting devconnect backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	postRepo := postgres.NewPostRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiryMinutes)*time.Minute)
	githubClient := github.NewClient(cfg.GithubAPIURL, cfg.GithubToken)

	authUC := usecase.NewAuthUsecase(userRepo, tokens, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	accountUC := usecase.NewAccountUsecase(postRepo, profileRepo, userRepo)
	githubUC := usecase.NewGithubUsecase(githubClient)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		ProfileUC: profileUC,
		AccountUC: accountUC,
		GithubUC:  githubUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
