package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/hamzabelkadi/portfolio-api/adapters/event"
	"github.com/hamzabelkadi/portfolio-api/adapters/persistence"
	portfolioUC "github.com/hamzabelkadi/portfolio-api/internal/application/usecase/portfolio"
	"github.com/hamzabelkadi/portfolio-api/internal/config"
	"github.com/hamzabelkadi/portfolio-api/pkg/logger"
)

// The worker rebuilds the cached portfolio view whenever content
// changes, so public reads rarely pay the assembly cost.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting portfolio view rebuild worker...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	// Repositories
	recordStore := persistence.NewRecordStore(dbPool, appLogger)
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	educationRepo := persistence.NewEducationRepo(recordStore, appLogger)
	experienceRepo := persistence.NewExperienceRepo(recordStore, appLogger)
	projectRepo := persistence.NewProjectRepo(recordStore, appLogger)
	skillsRepo := persistence.NewSkillsRepo(recordStore, appLogger)
	socialRepo := persistence.NewSocialLinkRepo(recordStore, appLogger)
	contactRepo := persistence.NewContactInfoRepo(recordStore, appLogger)
	viewCache := persistence.NewPortfolioCache(redisClient, appLogger)

	rebuildUC := portfolioUC.NewPortfolioUseCase(
		userRepo,
		educationRepo,
		skillsRepo,
		experienceRepo,
		projectRepo,
		contactRepo,
		socialRepo,
		viewCache,
		appLogger,
	)

	// Kafka Consumer
	contentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "portfolio-view-rebuilder",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contentConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicContentEvents))

	ctx := context.Background()
	for {
		msg, err := contentConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var ev event.ContentEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			appLogger.Error("Failed to unmarshal content event, skipping", err, zap.String("key", string(msg.Key)))
			commitMessage(contentConsumer, msg, appLogger)
			continue
		}

		appLogger.Info("Rebuilding portfolio view",
			zap.String("owner_id", ev.OwnerID.String()),
			zap.String("collection", ev.Collection),
			zap.String("action", ev.Action),
		)

		if _, err := rebuildUC.RebuildView(ctx, ev.OwnerID); err != nil {
			appLogger.Error("Failed to rebuild portfolio view", err, zap.String("owner_id", ev.OwnerID.String()))
			continue
		}

		commitMessage(contentConsumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
