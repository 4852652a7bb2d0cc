// Package kafka publishes lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"tessera/pkg/events"
)

// Config holds the Kafka publisher settings.
type Config struct {
	Brokers []string
	Topic   string
	// TopicPartitions is used when bootstrapping the topic. Ignored if the
	// topic already exists.
	TopicPartitions int32
}

// Publisher emits events as JSON records keyed by asset ID, so all events for
// one asset land on the same partition and stay ordered.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// Option configures the publisher.
type Option func(*Publisher)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New connects to the brokers and ensures the topic exists.
func New(ctx context.Context, cfg Config, opts ...Option) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	p := &Publisher{client: client, topic: cfg.Topic}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.ensureTopic(ctx, cfg); err != nil {
		client.Close()
		return nil, err
	}
	return p, nil
}

func (p *Publisher) ensureTopic(ctx context.Context, cfg Config) error {
	partitions := cfg.TopicPartitions
	if partitions <= 0 {
		partitions = 1
	}

	adm := kadm.NewClient(p.client)
	resp, err := adm.CreateTopics(ctx, partitions, 1, nil, cfg.Topic)
	if err != nil {
		return fmt.Errorf("create topic %q: %w", cfg.Topic, err)
	}
	for _, res := range resp.Sorted() {
		// TOPIC_ALREADY_EXISTS is fine; anything else is not.
		if res.Err != nil && !errors.Is(res.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %q: %w", res.Topic, res.Err)
		}
	}
	return nil
}

// payload is the JSON structure written to the topic.
type payload struct {
	Name      string         `json:"name"`
	AssetID   string         `json:"asset_id"`
	Timestamp string         `json:"timestamp"`
	RequestID string         `json:"request_id,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Emit produces the event synchronously so callers see broker failures.
func (p *Publisher) Emit(ctx context.Context, event events.Event) error {
	body, err := json.Marshal(payload{
		Name:      string(event.Name),
		AssetID:   event.AssetID,
		Timestamp: event.Timestamp.Format(time.RFC3339Nano),
		RequestID: event.RequestID,
		Payload:   event.Payload,
	})
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.AssetID),
		Value: body,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		if p.logger != nil {
			p.logger.WarnContext(ctx, "failed to produce event",
				"event", event.Name, "asset_id", event.AssetID, "error", err)
		}
		return fmt.Errorf("produce event %s: %w", event.Name, err)
	}
	return nil
}

// Close flushes pending records and releases the client.
func (p *Publisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.client.Flush(ctx); err != nil {
		p.client.Close()
		return err
	}
	p.client.Close()
	return nil
}
