package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gantt-chart-generator/config"
	_ "gantt-chart-generator/docs" // Swagger docs
	"gantt-chart-generator/internal/gantt/usecase"
	"gantt-chart-generator/internal/httpserver"
	"gantt-chart-generator/internal/middleware"
	"gantt-chart-generator/pkg/llmprovider"
	"gantt-chart-generator/pkg/log"
)

// @title       AI Gantt Chart Generator API
// @description Turns project instructions and reference documents into a validated timeline and an HTML Gantt chart.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Gantt Chart Generator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers. The server still starts without any so /render and
	// /classify keep working; /generate answers 503.
	manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
			os.Exit(1)
		}
		logger.Warn(ctx, "No LLM provider configured: set GEMINI_API_KEY or OPENAI_API_KEY, or llm.providers in config.yaml")
		manager = llmprovider.NewManager(nil, &llmprovider.Config{}, logger)
	}
	logger.Infof(ctx, "LLM providers: %v", manager.Providers())

	// 4. Gantt domain
	ganttUC := usecase.New(logger, manager, usecase.Config{
		Reconcile:   cfg.Gantt.Reconcile,
		Temperature: cfg.Gantt.Temperature,
		MaxTokens:   cfg.Gantt.MaxTokens,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.HTTPServer, cfg.RateLimit),
		GanttUseCase:    ganttUC,
		Providers:       manager.Providers(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
