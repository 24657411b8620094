package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// MessageBroker is at-least-once pub/sub keyed by stream name. Publish
// blocks when the stream is saturated; subscribers acknowledge after
// processing, so a crashed consumer's messages are re-delivered.
type MessageBroker interface {
	Publish(ctx context.Context, stream string, payload any) error
	Subscribe(ctx context.Context, stream, group, consumer string, handler func(ctx context.Context, data []byte) error) error
	Close() error
}

// streamMaxLen bounds each stream; old entries are trimmed approximately.
const streamMaxLen = 100_000

// RedisBroker implements MessageBroker on Redis streams with consumer
// groups.
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker connects to Redis and verifies reachability.
func NewRedisBroker(ctx context.Context, addr, password string, db int) (*RedisBroker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return &RedisBroker{client: client}, nil
}

// Publish appends a JSON-encoded payload to the stream.
func (b *RedisBroker) Publish(ctx context.Context, stream string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling broker payload: %w", err)
	}
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{"payload": data},
	}).Err(); err != nil {
		return fmt.Errorf("publishing to stream %s: %w", stream, err)
	}
	return nil
}

// Subscribe consumes the stream in a blocking loop until ctx is cancelled.
// Messages are acknowledged only after the handler returns nil; handler
// errors leave the message pending for redelivery.
func (b *RedisBroker) Subscribe(ctx context.Context, stream, group, consumer string, handler func(ctx context.Context, data []byte) error) error {
	if err := b.ensureGroup(ctx, stream, group); err != nil {
		return err
	}

	log := slog.With("stream", stream, "group", group, "consumer", consumer)
	log.Info("Broker subscription started")

	for {
		res, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: consumer,
			Streams:  []string{stream, ">"},
			Count:    16,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Info("Broker subscription stopped")
				return nil
			}
			if errors.Is(err, redis.Nil) {
				continue
			}
			log.Warn("Broker read failed, backing off", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
				continue
			}
		}

		for _, s := range res {
			for _, msg := range s.Messages {
				raw, _ := msg.Values["payload"].(string)
				if err := handler(ctx, []byte(raw)); err != nil {
					log.Warn("Handler failed, message left pending",
						"message_id", msg.ID, "error", err)
					continue
				}
				if err := b.client.XAck(ctx, stream, group, msg.ID).Err(); err != nil {
					log.Warn("Failed to ack message", "message_id", msg.ID, "error", err)
				}
			}
		}
	}
}

func (b *RedisBroker) ensureGroup(ctx context.Context, stream, group string) error {
	err := b.client.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && !isBusyGroup(err) {
		return fmt.Errorf("creating consumer group %s on %s: %w", group, stream, err)
	}
	return nil
}

func isBusyGroup(err error) bool {
	return err != nil && err.Error() == "BUSYGROUP Consumer Group name already exists"
}

// Close releases the Redis connection.
func (b *RedisBroker) Close() error {
	return b.client.Close()
}
