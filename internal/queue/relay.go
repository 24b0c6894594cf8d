package queue

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	rd "github.com/redis/go-redis/v9"
)

// Relay forwards contract events from the Redis Stream outbox to
// Kafka. A message is ACKed only after the Kafka publish succeeded;
// failures leave it pending for the next pass.
type Relay struct {
	rdb      *rd.Client
	producer *Producer

	stream   string
	group    string
	consumer string
}

func NewRelay(rdb *rd.Client, producer *Producer, stream, group, consumer string) *Relay {
	return &Relay{
		rdb:      rdb,
		producer: producer,
		stream:   stream,
		group:    group,
		consumer: consumer,
	}
}

func (r *Relay) Run(ctx context.Context) {
	if err := r.ensureGroup(ctx); err != nil {
		log.Printf("relay ensure group: %v", err)
		return
	}

	for {
		if ctx.Err() != nil {
			return
		}

		// Drain this consumer's pending backlog first so old failures
		// do not pile up behind new traffic.
		msgs, err := r.readGroup(ctx, "0", 0)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("relay read pending: %v", err)
			time.Sleep(300 * time.Millisecond)
			continue
		}
		if len(msgs) == 0 {
			msgs, err = r.readGroup(ctx, ">", 2*time.Second)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, context.Canceled) {
					return
				}
				log.Printf("relay read new: %v", err)
				time.Sleep(300 * time.Millisecond)
				continue
			}
		}

		for _, xm := range msgs {
			if err := r.processOne(ctx, xm); err != nil {
				// No ACK on publish failure: the message stays pending.
				log.Printf("relay process message id=%s: %v", xm.ID, err)
				time.Sleep(200 * time.Millisecond)
				break
			}
		}
	}
}

func (r *Relay) ensureGroup(ctx context.Context) error {
	err := r.rdb.XGroupCreateMkStream(ctx, r.stream, r.group, "0").Err()
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "BUSYGROUP") {
		return nil
	}
	return err
}

func (r *Relay) readGroup(ctx context.Context, streamID string, block time.Duration) ([]rd.XMessage, error) {
	streams, err := r.rdb.XReadGroup(ctx, &rd.XReadGroupArgs{
		Group:    r.group,
		Consumer: r.consumer,
		Streams:  []string{r.stream, streamID},
		Count:    16,
		Block:    block,
		NoAck:    false,
	}).Result()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]rd.XMessage, 0, 16)
	for _, s := range streams {
		out = append(out, s.Messages...)
	}
	return out, nil
}

func (r *Relay) processOne(ctx context.Context, xm rd.XMessage) error {
	msg, err := parseContractEvent(xm.Values)
	if err != nil {
		// Dirty messages are ACKed away so they cannot block the queue.
		if ackErr := r.ackAndDelete(ctx, xm.ID); ackErr != nil {
			return fmt.Errorf("parse failed: %v, ack failed: %w", err, ackErr)
		}
		return nil
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.producer.Publish(pubCtx, msg); err != nil {
		return err
	}
	return r.ackAndDelete(ctx, xm.ID)
}

func (r *Relay) ackAndDelete(ctx context.Context, id string) error {
	pipe := r.rdb.TxPipeline()
	pipe.XAck(ctx, r.stream, r.group, id)
	pipe.XDel(ctx, r.stream, id)
	_, err := pipe.Exec(ctx)
	return err
}

func parseContractEvent(values map[string]interface{}) (ContractMessage, error) {
	eventID, err := getStreamString(values, "event_id")
	if err != nil {
		return ContractMessage{}, err
	}
	action, err := getStreamString(values, "action")
	if err != nil {
		return ContractMessage{}, err
	}
	contractID, err := getStreamString(values, "contract_id")
	if err != nil {
		return ContractMessage{}, err
	}
	vendorID, err := getStreamString(values, "vendor_id")
	if err != nil {
		return ContractMessage{}, err
	}
	priceStr, err := getStreamString(values, "price")
	if err != nil {
		return ContractMessage{}, err
	}

	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil {
		return ContractMessage{}, fmt.Errorf("invalid price %q", priceStr)
	}

	msg := ContractMessage{
		EventID:    eventID,
		Action:     action,
		ContractID: contractID,
		VendorID:   vendorID,
		Price:      price,
	}
	if err := msg.Validate(); err != nil {
		return ContractMessage{}, err
	}
	return msg, nil
}

func getStreamString(values map[string]interface{}, key string) (string, error) {
	v, ok := values[key]
	if !ok {
		return "", fmt.Errorf("missing field %s", key)
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatInt(int64(x), 10), nil
	default:
		return "", fmt.Errorf("unsupported field type %s: %T", key, v)
	}
}
