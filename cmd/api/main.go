package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ess-chatbot/config"
	_ "ess-chatbot/docs" // Swagger docs
	"ess-chatbot/internal/auth"
	"ess-chatbot/internal/catalog"
	chatHTTP "ess-chatbot/internal/chat/delivery/http"
	chatUC "ess-chatbot/internal/chat/usecase"
	"ess-chatbot/internal/employee/repository/inmemory"
	"ess-chatbot/internal/extractor"
	"ess-chatbot/internal/httpserver"
	"ess-chatbot/internal/matcher"
	"ess-chatbot/internal/middleware"
	"ess-chatbot/pkg/datemath"
	"ess-chatbot/pkg/gcalendar"
	"ess-chatbot/pkg/log"
	"ess-chatbot/pkg/voyage"
)

// @title       Employee Self-Service Chatbot API
// @description Conversational HR assistant: embedding-based intent matching, slot extraction, session-gated employee data access.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting ESS Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Seed data: employees and the intent catalog
	repo, err := inmemory.New(logger, cfg.Data.EmployeesPath)
	if err != nil {
		logger.Error(ctx, "Failed to load employee data: ", err)
		return
	}

	cat, err := catalog.Load(cfg.Data.IntentsPath)
	if err != nil {
		logger.Error(ctx, "Failed to load intent catalog: ", err)
		return
	}
	logger.Infof(ctx, "Intent catalog loaded: %d intents", cat.Len())

	// 4. Intent matcher over Voyage embeddings
	voyageClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to create Voyage client: ", err)
		return
	}
	if cfg.Voyage.Model != "" {
		voyageClient = voyageClient.WithModel(cfg.Voyage.Model)
	}

	m, err := matcher.New(logger, voyageClient, cat, cfg.Matcher.Threshold, cfg.Matcher.QueryCacheSize)
	if err != nil {
		logger.Error(ctx, "Failed to create matcher: ", err)
		return
	}
	if err := m.Warm(ctx); err != nil {
		logger.Error(ctx, "Failed to warm example embeddings: ", err)
		return
	}

	// 5. Slot extractor
	dateMathParser, dtErr := datemath.NewParser(cfg.Chat.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chat.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	ex := extractor.New(dateMathParser)

	// 6. Sessions
	sessions := auth.New(logger, repo)

	// 7. Google Calendar client (optional)
	var calendarClient chatUC.CalendarClient
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. Chat UseCase and delivery
	uc, err := chatUC.New(logger, m, ex, sessions, repo, cat, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Chat.Timezone)
	if err != nil {
		logger.Error(ctx, "Failed to create chat usecase: ", err)
		return
	}
	chatHandler := chatHTTP.New(logger, uc, cat)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		RateLimiter: middleware.NewRateLimiter(logger, cfg.Chat.RateLimitPerMin),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
