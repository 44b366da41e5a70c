package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-tasker/config"
	_ "ai-tasker/docs" // Swagger docs
	"ai-tasker/internal/app"
	"ai-tasker/internal/httpserver"
	"ai-tasker/pkg/log"
)

// @title       AI Tasker API
// @description Turns goals into clarifying questions and task plans using OpenAI-compatible providers.
// @version     1
// @host        localhost:8080
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

	logger.Info(ctx, "Starting AI Tasker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Planning stack
	planner, err := app.NewPlanner(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize planner: ", err)
		os.Exit(1)
	}

	shutdownTimeout, err := app.ShutdownTimeout(cfg)
	if err != nil {
		logger.Error(ctx, "Invalid shutdown timeout: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: shutdownTimeout,
		AdminKey:        cfg.API.AdminKey,
		RateLimitPerMin: cfg.API.RateLimitPerMin,
		PlanUseCase:     planner.UseCase,
		Credentials:     planner.Credentials,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
