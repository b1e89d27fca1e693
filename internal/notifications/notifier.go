// Package notifications bridges the matcher to the external push dispatcher.
// The dispatcher consumes payloads from Redis channels and owns delivery,
// retries, and failure reporting; nothing here blocks on it.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MatchAlert is the payload handed to the push dispatcher for one recipient.
type MatchAlert struct {
	EventID   string    `json:"event_id"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	CheckInID *uint     `json:"checkin_id,omitempty"`
	Addresses []string  `json:"addresses"`
	Note      string    `json:"note"`
	SentAt    time.Time `json:"sent_at"`
}

// Notifier publishes dispatcher payloads into Redis channels.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// UserChannel returns the dispatcher channel for one user.
func UserChannel(userID uint) string {
	return fmt.Sprintf("push:user:%d", userID)
}

// PublishMatchAlert sends a match alert payload to the recipient's dispatcher
// channel. A nil Redis client makes this a no-op so post creation never
// depends on the dispatcher being up.
func (n *Notifier) PublishMatchAlert(ctx context.Context, alert MatchAlert) error {
	if n.rdb == nil {
		return nil
	}
	if alert.EventID == "" {
		alert.EventID = uuid.NewString()
	}
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, UserChannel(alert.UserID), payload).Err()
}

// StartDispatcherSubscriber subscribes to every user's dispatcher channel and
// calls onAlert for each payload. Used by the in-process dev dispatcher and by
// tests; production dispatchers subscribe from their own process.
func (n *Notifier) StartDispatcherSubscriber(ctx context.Context, onAlert func(alert MatchAlert)) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, "push:user:*")
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var alert MatchAlert
				if err := json.Unmarshal([]byte(msg.Payload), &alert); err != nil {
					continue
				}
				onAlert(alert)
			}
		}
	}()

	return nil
}
