package queue

import (
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"hirely.app/api/internal/model"
)

// StreamMaxLen caps each notification stream. Trimming is approximate.
const StreamMaxLen = 1000

// StreamName is the per-recipient notification stream, e.g. notifications:user-42.
func StreamName(role model.Role, ownerID int64) string {
	return fmt.Sprintf("notifications:%s-%d", role, ownerID)
}

// Event is one entry read back from a notification stream.
type Event struct {
	ID           string
	Notification model.Notification
}

func eventValues(n *model.Notification) (map[string]any, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("encoding notification: %w", err)
	}
	return map[string]any{
		"notification_id": n.ID,
		"type":            n.Type,
		"payload":         string(payload),
	}, nil
}

// ParseEvent decodes a raw stream entry written by the producer.
func ParseEvent(msg redis.XMessage) (Event, error) {
	raw, ok := msg.Values["payload"]
	if !ok {
		return Event{}, fmt.Errorf("missing payload")
	}
	var n model.Notification
	if err := json.Unmarshal([]byte(fmt.Sprint(raw)), &n); err != nil {
		return Event{}, fmt.Errorf("parsing payload: %w", err)
	}
	if n.ID == 0 {
		return Event{}, fmt.Errorf("missing notification id")
	}
	return Event{ID: msg.ID, Notification: n}, nil
}
