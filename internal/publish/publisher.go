// Package publish streams a generated dataset onto a Kafka topic.
package publish

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Header values identifying the record type of a message
const (
	EntityHeader        = "entity"
	EntityShipment      = "shipment"
	EntityConsolidation = "consolidation"
	EntityAlert         = "alert"
)

// Writer is the subset of *kafka.Writer the publisher uses
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer Writer
	logger *zap.Logger
}

// NewKafkaPublisher connects a writer to the given brokers and topic.
// Messages with the same key land on the same partition.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	return NewPublisher(&kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}, logger)
}

// NewPublisher wraps an existing writer
func NewPublisher(w Writer, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishDataset writes one message per shipment, group and alert, in that
// order, and returns how many were written.
func (p *Publisher) PublishDataset(ctx context.Context, ds *synth.Dataset) (int, error) {
	msgs := make([]kafka.Message, 0, len(ds.Shipments)+len(ds.Groups)+len(ds.Alerts))

	for _, s := range ds.Shipments {
		msg, err := message(EntityShipment, s.ID, s)
		if err != nil {
			return 0, err
		}
		msgs = append(msgs, msg)
	}
	for _, g := range ds.Groups {
		msg, err := message(EntityConsolidation, g.ID, g)
		if err != nil {
			return 0, err
		}
		msgs = append(msgs, msg)
	}
	for _, a := range ds.Alerts {
		msg, err := message(EntityAlert, a.ID, a)
		if err != nil {
			return 0, err
		}
		msgs = append(msgs, msg)
	}

	if len(msgs) == 0 {
		return 0, nil
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.logger.Error("kafka write failed", zap.Int("messages", len(msgs)), zap.Error(err))
		return 0, fmt.Errorf("failed to write messages: %w", err)
	}

	p.logger.Info("dataset published",
		zap.Int("shipments", len(ds.Shipments)),
		zap.Int("consolidations", len(ds.Groups)),
		zap.Int("alerts", len(ds.Alerts)),
	)
	return len(msgs), nil
}

// Close shuts down the underlying writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func message(entity, key string, value any) (kafka.Message, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal %s %s: %w", entity, key, err)
	}
	return kafka.Message{
		Key:     []byte(key),
		Value:   payload,
		Headers: []kafka.Header{{Key: EntityHeader, Value: []byte(entity)}},
	}, nil
}
