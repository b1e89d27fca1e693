package service

import (
	"context"
	"testing"
	"time"

	"spotted/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationGetParticipantsOnly(t *testing.T) {
	conversations := noopConversationRepo()
	conversations.getByIDFn = func(_ context.Context, _ uint) (*models.Conversation, error) {
		return &models.Conversation{ID: 9, ProducerID: 1, ConsumerID: 2}, nil
	}
	svc := NewConversationService(conversations)

	for _, actorID := range []uint{1, 2} {
		conv, err := svc.Get(context.Background(), actorID, 9)
		require.NoError(t, err)
		assert.Equal(t, uint(9), conv.ID)
	}

	// Outsiders get the same answer as for a conversation that does not exist.
	_, err := svc.Get(context.Background(), 3, 9)
	assertNotFoundError(t, err)
}

func TestNotificationListClampsPagination(t *testing.T) {
	notificationsRepo := noopNotificationRepo()
	var gotLimit, gotOffset int
	notificationsRepo.listForUserFn = func(_ context.Context, _ uint, limit, offset int) ([]models.MatchNotification, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}
	svc := NewNotificationService(notificationsRepo)

	_, err := svc.List(context.Background(), 1, 500, -3)
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, 0, gotOffset)
}

func TestNotificationMarkReadPassesActor(t *testing.T) {
	notificationsRepo := noopNotificationRepo()
	var gotNotification, gotUser uint
	notificationsRepo.markReadFn = func(_ context.Context, notificationID, userID uint, at time.Time) error {
		gotNotification, gotUser = notificationID, userID
		assert.False(t, at.IsZero())
		return nil
	}
	svc := NewNotificationService(notificationsRepo)

	require.NoError(t, svc.MarkRead(context.Background(), 2, 33))
	assert.Equal(t, uint(33), gotNotification)
	assert.Equal(t, uint(2), gotUser)
}

func TestFavoriteAddRequiresPlace(t *testing.T) {
	svc := NewFavoriteService(noopFavoriteRepo())

	_, err := svc.Add(context.Background(), 1, "  ", "")
	assertValidationError(t, err)

	favorite, err := svc.Add(context.Background(), 1, "gp-cafe-1", "my spot")
	require.NoError(t, err)
	assert.Equal(t, uint(1), favorite.UserID)
	assert.Equal(t, "gp-cafe-1", favorite.PlaceID)
}

func TestBlockSelfRejected(t *testing.T) {
	svc := NewBlockService(noopBlockRepo(), noopUserRepo())

	err := svc.Block(context.Background(), 1, 1)
	assertValidationError(t, err)
}

func TestBlockUnknownTarget(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewBlockService(noopBlockRepo(), users)

	err := svc.Block(context.Background(), 1, 99)
	assertNotFoundError(t, err)
}

func TestCheckInCurrentNilWhenNotCheckedIn(t *testing.T) {
	svc := NewCheckInService(noopCheckInRepo())

	current, err := svc.Current(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, current)
}
