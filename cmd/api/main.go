package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/justsurfingit/AI-HR-Funnel/internal/config"
	"github.com/justsurfingit/AI-HR-Funnel/internal/database"
	"github.com/justsurfingit/AI-HR-Funnel/internal/handlers"
	"github.com/justsurfingit/AI-HR-Funnel/internal/llm"
	"github.com/justsurfingit/AI-HR-Funnel/internal/services"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/logger"
)

func main() {
	logger.Setup(slog.LevelInfo)

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	gateway, err := llm.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GatewayTimeout)
	if err != nil {
		slog.Error("completion gateway init failed", "error", err)
		os.Exit(1)
	}

	jobService := services.NewJobService(db)
	candidateService := services.NewCandidateService(db)
	screenService := services.NewScreenService(gateway, db)
	offerService := services.NewOfferService(db)
	statsService := services.NewStatsService(db)

	router := handlers.NewRouter(handlers.Deps{
		Jobs:       handlers.NewJobHandler(jobService, screenService),
		Candidates: handlers.NewCandidateHandler(candidateService),
		Screen:     handlers.NewScreenHandler(screenService),
		Offers:     handlers.NewOfferHandler(offerService),
		Stats:      handlers.NewStatsHandler(statsService),
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
