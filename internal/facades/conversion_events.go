package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines the subset of kafka.Writer used for publishing.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ConversionEventsKafkaFacade publishes completed conversions to Kafka.
type ConversionEventsKafkaFacade struct {
	writer KafkaWriter
}

// NewConversionEventsKafkaFacade creates a publisher on top of writer.
func NewConversionEventsKafkaFacade(writer KafkaWriter) *ConversionEventsKafkaFacade {
	return &ConversionEventsKafkaFacade{writer: writer}
}

// NewKafkaWriter builds a writer for a comma-separated broker list.
func NewKafkaWriter(brokers, topic string) *kafka.Writer {
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
	}
}

// Publish writes one event keyed by its id.
func (f *ConversionEventsKafkaFacade) Publish(ctx context.Context, event models.ConversionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal conversion event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}
	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish conversion event: %w", err)
	}

	logger.Log.Infow("conversion event published",
		"event_id", event.EventID, "from", event.FromCurrency, "to", event.ToCurrency)
	return nil
}

// Close flushes and closes the underlying writer.
func (f *ConversionEventsKafkaFacade) Close() error {
	return f.writer.Close()
}
