package main

import (
	"time"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/config"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/db"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/mq"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/mqhandler"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/patterns"
	redisclient "github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/redis"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/repository"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/service"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/summarizer"
	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/util"

	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	logger.Info("Starting analysis worker...")

	// Init Redis deduper
	rdb := redisclient.NewRedisClient(cfg.Redis)
	defer rdb.Close()
	deduper := util.NewDeduper(rdb, time.Hour)

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init producer for email.analyzed events
	producer, err := mq.NewProducer(cfg.MQ.URL)
	if err != nil {
		logger.Fatal("failed to init producer", zap.Error(err))
	}
	defer producer.Close()

	// Wire the analysis pipeline
	historyRepo := repository.NewHistoryRepository(dbConn)
	sumClient := summarizer.New(cfg.HuggingFace.APIKey, cfg.HuggingFace.BaseURL, cfg.HuggingFace.Model)
	analyzeService := service.NewAnalyzeService(patterns.Default(), sumClient, historyRepo, producer, logger)
	analyzeHandler := mqhandler.NewEmailReceivedAnalyzeHandler(analyzeService, deduper, logger)

	// Consumer for email.received events
	logger.Info("Initializing analyze consumer", zap.String("queue", "email.received.analyze.q"))
	consumer, err := mq.NewConsumer(cfg.MQ.URL, "email.received.analyze.q", mq.RoutingKeyEmailReceived, logger)
	if err != nil {
		logger.Fatal("failed to init analyze consumer", zap.Error(err))
	}
	consumer.SetHandler(analyzeHandler.HandleEmailReceived)
	go func() {
		logger.Info("Starting analyze consumer")
		if err := consumer.StartConsuming(); err != nil {
			logger.Fatal("analyze consumer failed", zap.Error(err))
		}
	}()
	defer consumer.Close()

	logger.Info("Worker is ready to process messages")

	// Keep worker running
	select {}
}
