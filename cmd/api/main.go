package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/krishisahayak/krishibot-api/internal/config"
	"github.com/krishisahayak/krishibot-api/internal/db"
	apihttp "github.com/krishisahayak/krishibot-api/internal/http"
	"github.com/krishisahayak/krishibot-api/internal/llm"
	"github.com/krishisahayak/krishibot-api/internal/repository"
	"github.com/krishisahayak/krishibot-api/internal/service"
	"github.com/krishisahayak/krishibot-api/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var (
		conversations repository.ConversationRepository = repository.NewDisabledConversationRepository()
		userHandler   *apihttp.UserHandler
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		conversations = repository.NewPgConversationRepository(pool)
		userHandler = apihttp.NewUserHandler(logger, repository.NewPgUserRepository(pool))
	} else {
		logger.Warn("DATABASE_URL not set, conversation logging and user routes disabled")
	}

	registry := session.NewRegistry()
	genClient := llm.NewHTTPClient(
		cfg.GenAIBaseURL,
		cfg.GoogleAIAPIKey,
		cfg.GenAIModel,
		time.Duration(cfg.GenAITimeoutSecs)*time.Second,
		logger,
	)
	chatSvc := service.NewChatService(
		logger,
		registry,
		genClient,
		conversations,
		cfg.GenAITemperature,
		cfg.GenAIMaxTokens,
		time.Duration(cfg.PersistTimeoutSec)*time.Second,
	)

	chatHandler := apihttp.NewChatHandler(logger, chatSvc, registry)
	router := apihttp.NewRouter(logger, cfg.AllowedOrigins, chatHandler, userHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("KrishiBot API server starting",
		zap.String("port", cfg.HTTPPort),
		zap.String("health", "http://localhost:"+cfg.HTTPPort+"/api/health"),
		zap.String("chat", "http://localhost:"+cfg.HTTPPort+"/api/chat"),
		zap.Bool("api_key_configured", cfg.GoogleAIAPIKey != ""),
	)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, draining")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
