package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/smartshop/api/internal/config"
	"github.com/smartshop/api/internal/domain/interaction"
)

const (
	TopicSearchEvents   = "search.events"
	TopicViewEvents     = "view.events"
	TopicPurchaseEvents = "purchase.events"
)

// Publisher is what the usecases depend on; KafkaProducerClient implements it.
type Publisher interface {
	PublishInteraction(ctx context.Context, ev interaction.Event) error
}

type KafkaProducerClient struct {
	SearchEventsWriter   *kafka.Writer
	ViewEventsWriter     *kafka.Writer
	PurchaseEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	newWriter := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		}
	}

	return &KafkaProducerClient{
		SearchEventsWriter:   newWriter(TopicSearchEvents),
		ViewEventsWriter:     newWriter(TopicViewEvents),
		PurchaseEventsWriter: newWriter(TopicPurchaseEvents),
	}, nil
}

// PublishInteraction routes the event to its per-type topic, keyed by user so
// one user's events stay ordered within a partition.
func (c *KafkaProducerClient) PublishInteraction(ctx context.Context, ev interaction.Event) error {
	if err := ev.Validate(); err != nil {
		return err
	}

	var writer *kafka.Writer
	switch ev.Type {
	case interaction.TypeSearch:
		writer = c.SearchEventsWriter
	case interaction.TypeView:
		writer = c.ViewEventsWriter
	case interaction.TypePurchase:
		writer = c.PurchaseEventsWriter
	}

	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal interaction event failed: %w", err)
	}

	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.UserID),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	for _, w := range []*kafka.Writer{c.SearchEventsWriter, c.ViewEventsWriter, c.PurchaseEventsWriter} {
		if w != nil {
			w.Close()
		}
	}
}
