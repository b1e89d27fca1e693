package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishMatchAlertNilClientIsNoop(t *testing.T) {
	n := NewNotifier(nil)
	err := n.PublishMatchAlert(context.Background(), MatchAlert{PostID: 1, UserID: 2})
	assert.NoError(t, err)
}

func TestPublishAndSubscribeRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	n := NewNotifier(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan MatchAlert, 1)
	require.NoError(t, n.StartDispatcherSubscriber(ctx, func(alert MatchAlert) {
		received <- alert
	}))

	// Give the pattern subscription a moment to register.
	time.Sleep(50 * time.Millisecond)

	sent := MatchAlert{
		PostID:    11,
		UserID:    42,
		Addresses: []string{"token-a"},
		Note:      "red scarf at the coffee bar",
		SentAt:    time.Now().UTC(),
	}
	require.NoError(t, n.PublishMatchAlert(ctx, sent))

	select {
	case got := <-received:
		assert.Equal(t, sent.PostID, got.PostID)
		assert.Equal(t, sent.UserID, got.UserID)
		assert.Equal(t, sent.Addresses, got.Addresses)
		assert.NotEmpty(t, got.EventID, "publish assigns an event id")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dispatcher payload")
	}
}

func TestUserChannel(t *testing.T) {
	assert.Equal(t, "push:user:7", UserChannel(7))
}
