package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/smartshop/api/adapters/event"
	"github.com/smartshop/api/adapters/persistence"
	interactionUC "github.com/smartshop/api/internal/application/usecase/interaction"
	"github.com/smartshop/api/internal/config"
	"github.com/smartshop/api/internal/domain/interaction"
	"github.com/smartshop/api/pkg/logger"
)

func main() {
	fmt.Println("Starting SmartShop Interaction Worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	interactionRepo := persistence.NewPostgresInteractionRepo(dbPool, appLogger)
	processUseCase := interactionUC.NewProcessInteractionEventUseCase(interactionRepo, appLogger)

	topics := []string{
		event.TopicSearchEvents,
		event.TopicViewEvents,
		event.TopicPurchaseEvents,
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	for _, topic := range topics {
		wg.Add(1)
		go func(topic string) {
			defer wg.Done()
			consumeTopic(ctx, cfg, topic, processUseCase, appLogger)
		}(topic)
	}

	appLogger.Info("Worker listening", zap.Strings("topics", topics))
	wg.Wait()
}

func consumeTopic(ctx context.Context, cfg config.Config, topic string, uc *interactionUC.ProcessInteractionEventUseCase, appLogger logger.Logger) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    topic,
		GroupID:  "interaction-sink-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to fetch message from Kafka", err, zap.String("topic", topic))
			continue
		}

		var ev interaction.Event
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			appLogger.Warn("Failed to unmarshal event, skipping", zap.String("topic", topic), zap.Error(err))
			commitMessage(reader, msg, appLogger)
			continue
		}

		if err := uc.Execute(ctx, ev); err != nil {
			// No commit: the event will be redelivered and Save is idempotent.
			appLogger.Error("Failed to process interaction event", err, zap.String("event_id", ev.ID.String()))
			continue
		}

		commitMessage(reader, msg, appLogger)
	}
}

func commitMessage(reader *kafka.Reader, msg kafka.Message, appLogger logger.Logger) {
	if err := reader.CommitMessages(context.Background(), msg); err != nil {
		appLogger.Error("Failed to commit message", err)
	}
}
