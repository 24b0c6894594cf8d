package queue

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"

	"parts_office/internal/model"
)

// Consumer reads contract events off Kafka and appends them to the
// contract_events audit table.
type Consumer struct {
	r  *kafka.Reader
	db *gorm.DB
}

func NewConsumer(brokers []string, topic, groupID string, db *gorm.DB) *Consumer {
	return &Consumer{
		r: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1e3,
			MaxBytes: 1e6,
		}),
		db: db,
	}
}

func (c *Consumer) Close() error { return c.r.Close() }

func (c *Consumer) Run(ctx context.Context) {
	for {
		m, err := c.r.ReadMessage(ctx)
		if err != nil {
			return // ctx cancelled or connection gone
		}

		var msg ContractMessage
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			log.Printf("consumer unmarshal: %v", err)
			continue
		}
		if err := msg.Validate(); err != nil {
			log.Printf("consumer validate: %v", err)
			continue
		}

		event := &model.ContractEvent{
			EventID:    msg.EventID,
			Action:     msg.Action,
			ContractID: msg.ContractID,
			VendorID:   msg.VendorID,
			Price:      msg.Price,
		}

		if err := c.db.Create(event).Error; err != nil {
			// Replayed message hitting the UNIQUE event_id index counts
			// as already processed.
			if errorsLikeUnique(err) {
				continue
			}
			log.Printf("consumer db create: %v", err)
			continue
		}
	}
}

func errorsLikeUnique(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE") || strings.Contains(s, "unique")
}
