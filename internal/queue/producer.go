package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer wraps the Kafka writer for contract events.
type Producer struct {
	w *kafka.Writer
}

// NewProducer configures the writer for reliability:
// - Hash balancer keyed by contract id keeps one contract's events on
//   one partition, so their relative order holds.
// - RequireAll waits for ISR acknowledgement.
// - MaxAttempts/timeouts bound retries.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  5,
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  5 * time.Second,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (p *Producer) Close() error { return p.w.Close() }

// Publish writes one contract event synchronously.
func (p *Producer) Publish(ctx context.Context, msg ContractMessage) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.ContractID),
		Value: b,
	})
}
