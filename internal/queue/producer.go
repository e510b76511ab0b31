package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"hirely.app/api/internal/model"
)

// Producer appends notifications to the recipient's stream.
type Producer struct {
	client *redis.Client
	logger *slog.Logger
}

func NewProducer(client *redis.Client, logger *slog.Logger) *Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Producer{client: client, logger: logger}
}

func (p *Producer) Publish(ctx context.Context, n *model.Notification) error {
	role, ownerID := n.Recipient()
	if role == "" {
		return fmt.Errorf("notification %d has no recipient", n.ID)
	}

	values, err := eventValues(n)
	if err != nil {
		return err
	}

	stream := StreamName(role, ownerID)
	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: StreamMaxLen,
		Approx: true,
		Values: values,
	}).Err(); err != nil {
		return fmt.Errorf("xadd (stream=%s): %w", stream, err)
	}

	p.logger.DebugContext(ctx, "published notification", "stream", stream, "notification_id", n.ID, "type", n.Type)
	return nil
}

func (p *Producer) Close() error {
	return p.client.Close()
}
