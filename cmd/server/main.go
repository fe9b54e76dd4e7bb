package main

import (
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/config"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/api"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/db"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/mq"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/patterns"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/repository"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/service"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/summarizer"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/util"

	"go.uber.org/zap"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	// 2. Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// 3. Init RabbitMQ producer
	producer, err := mq.NewProducer(cfg.MQ.URL)
	if err != nil {
		logger.Fatal("failed to init producer", zap.Error(err))
	}
	defer producer.Close()

	// 4. Init repositories
	historyRepo := repository.NewHistoryRepository(dbConn)

	// 5. Init summarizer client and services
	sumClient := summarizer.New(cfg.HuggingFace.APIKey, cfg.HuggingFace.BaseURL, cfg.HuggingFace.Model)
	analyzeService := service.NewAnalyzeService(patterns.Default(), sumClient, historyRepo, producer, logger)
	ingestService := service.NewIngestService(producer, logger)

	// 6. Init handlers and router
	analyzeHandler := api.NewAnalyzeHandler(analyzeService, ingestService, sumClient)
	historyHandler := api.NewHistoryHandler(historyRepo)
	router := api.NewRouter(analyzeHandler, historyHandler)

	// 7. Run server
	logger.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
