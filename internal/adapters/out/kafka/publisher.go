// Package kafka publishes order status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"grocery/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// OrderStatusChanged is the wire form of order.StatusChanged. From is empty for
// the creation event.
type OrderStatusChanged struct {
	OrderID     string    `json:"orderId"`
	ShopperID   string    `json:"shopperId"`
	DelivererID string    `json:"delivererId,omitempty"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes one message per event, keyed by order id so every change of
// an order lands on the same partition in order.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

func newPublisherWithWriter(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish implements ports.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		payload := OrderStatusChanged{
			OrderID:     event.OrderID,
			ShopperID:   event.ShopperID,
			DelivererID: event.DelivererID,
			To:          event.To.String(),
			OccurredAt:  event.OccurredAt,
		}
		if !event.IsCreation() {
			payload.From = event.From.String()
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.OrderID),
			Value: data,
			Time:  event.OccurredAt,
		})
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
