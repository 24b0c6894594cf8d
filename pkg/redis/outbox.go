package redis

import (
	"context"

	"github.com/google/uuid"
	rd "github.com/redis/go-redis/v9"

	"parts_office/internal/model"
)

// Outbox appends contract events to a Redis Stream. The relay worker
// forwards them to Kafka later, so a broker outage never fails the
// request that produced the event.
type Outbox struct {
	rdb    *rd.Client
	stream string
}

func NewOutbox(rdb *rd.Client, stream string) *Outbox {
	return &Outbox{rdb: rdb, stream: stream}
}

func (o *Outbox) ContractCreated(ctx context.Context, c *model.Contract) error {
	return o.add(ctx, "created", c)
}

func (o *Outbox) ContractDeleted(ctx context.Context, c *model.Contract) error {
	return o.add(ctx, "deleted", c)
}

func (o *Outbox) add(ctx context.Context, action string, c *model.Contract) error {
	return o.rdb.XAdd(ctx, &rd.XAddArgs{
		Stream: o.stream,
		Values: map[string]any{
			"event_id":    uuid.NewString(),
			"action":      action,
			"contract_id": c.ID,
			"vendor_id":   c.VendorID,
			"price":       c.Price,
		},
	}).Err()
}
