package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Leckan/real-estate-analyzer/config"
	"github.com/Leckan/real-estate-analyzer/internal/analyzer"
	"github.com/Leckan/real-estate-analyzer/internal/api"
	"github.com/Leckan/real-estate-analyzer/internal/completion"
	"github.com/Leckan/real-estate-analyzer/internal/trends"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)

	if cfg.Completion.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, analysis requests will fail until it is configured")
	}

	completer := completion.NewClient(completion.Options{
		APIKey:      cfg.Completion.APIKey,
		Model:       cfg.Completion.Model,
		Temperature: cfg.Completion.Temperature,
		BaseURL:     cfg.Completion.BaseURL,
	}, logger)

	propertyAnalyzer := analyzer.New(completer, analyzer.Options{
		APIKey:  cfg.Completion.APIKey,
		Timeout: cfg.Completion.Timeout,
		Lenient: cfg.Completion.ParseMode == config.ParseModeLenient,
		Trends:  trends.NewSynthesizer(nil),
	}, logger)

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	api.SetupRoutes(router, api.NewHandler(propertyAnalyzer, logger), cfg.Server.AllowedOrigins, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":       cfg.Server.Port,
			"model":      cfg.Completion.Model,
			"parse_mode": cfg.Completion.ParseMode,
			"timeout":    cfg.Completion.Timeout.String(),
		}).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}
	logger.Info("Server stopped")
}
