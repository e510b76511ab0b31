package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"hirely.app/api/common/logger"
	"hirely.app/api/internal/model"
)

// LatestID starts a read at entries added after the call.
const LatestID = "$"

// Reader tails notification streams. Each SSE subscriber reads independently,
// so there is no consumer group and nothing to ack.
type Reader struct {
	client *redis.Client
	block  time.Duration
	count  int64
}

func NewReader(client *redis.Client, block time.Duration) *Reader {
	return &Reader{client: client, block: block, count: 50}
}

// Read blocks up to the configured duration for entries after lastID and
// returns them with the id to resume from. A timeout returns no events and
// the same lastID.
func (r *Reader) Read(ctx context.Context, role model.Role, ownerID int64, lastID string) ([]Event, string, error) {
	if lastID == "" {
		lastID = LatestID
	}
	stream := StreamName(role, ownerID)
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "hirely.queue.reader"})

	streams, err := r.client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{stream, lastID},
		Count:   r.count,
		Block:   r.block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, lastID, nil
		}
		return nil, lastID, fmt.Errorf("reading from stream: %w", err)
	}

	var events []Event
	// XRead supports multiple streams, but we only read one so this outer loop only runs once.
	for _, s := range streams {
		for _, msg := range s.Messages {
			lastID = msg.ID
			ev, parseErr := ParseEvent(msg)
			if parseErr != nil {
				slog.WarnContext(ctx, "skipping malformed stream entry",
					"error", parseErr,
					"raw_message_id", msg.ID,
					"stream", stream)
				continue
			}
			events = append(events, ev)
		}
	}
	return events, lastID, nil
}
