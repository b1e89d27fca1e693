package service

import (
	"context"
	"testing"
	"time"

	"spotted/internal/models"
	"spotted/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatchService(
	posts *postRepoStub,
	checkIns *checkInRepoStub,
	notificationsRepo *notificationRepoStub,
	blocks *blockRepoStub,
) *MatchService {
	return NewMatchService(posts, checkIns, notificationsRepo, blocks, notifications.NewNotifier(nil))
}

func verifiedCheckIn(id, userID uint, at time.Time) models.CheckIn {
	return models.CheckIn{ID: id, UserID: userID, LocationID: 10, CheckedInAt: at, Verified: true}
}

func TestComputeNotificationTargetsExclusions(t *testing.T) {
	post := sightingPost()
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) { return post, nil }

	at := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	checkIns := noopCheckInRepo()
	checkIns.getVerifiedOverlappingFn = func(_ context.Context, locationID uint, _, _ time.Time) ([]models.CheckIn, error) {
		assert.Equal(t, uint(10), locationID)
		return []models.CheckIn{
			verifiedCheckIn(1, 1, at), // the producer
			verifiedCheckIn(2, 2, at), // eligible
			verifiedCheckIn(3, 3, at), // already notified
			verifiedCheckIn(4, 4, at), // blocked
			verifiedCheckIn(5, 5, at), // opted out
			verifiedCheckIn(6, 6, at), // no push address
		}, nil
	}

	notificationsRepo := noopNotificationRepo()
	notificationsRepo.notifiedUserIDsFn = func(_ context.Context, postID uint) ([]uint, error) {
		assert.Equal(t, uint(42), postID)
		return []uint{3}, nil
	}
	notificationsRepo.matchAlertsDisabledUserIDsFn = func(_ context.Context, _ []uint) ([]uint, error) {
		return []uint{5}, nil
	}
	notificationsRepo.pushAddressesByUserFn = func(_ context.Context, ids []uint) (map[uint][]string, error) {
		addrs := make(map[uint][]string)
		for _, id := range ids {
			if id != 6 {
				addrs[id] = []string{"token"}
			}
		}
		return addrs, nil
	}

	blocks := noopBlockRepo()
	blocks.blockedPartnerIDsFn = func(_ context.Context, userID uint) ([]uint, error) {
		assert.Equal(t, uint(1), userID)
		return []uint{4}, nil
	}

	svc := newTestMatchService(posts, checkIns, notificationsRepo, blocks)

	targets, err := svc.ComputeNotificationTargets(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, uint(2), targets[0].UserID)
	require.NotNil(t, targets[0].CheckInID)
	assert.Equal(t, uint(2), *targets[0].CheckInID)
	assert.Equal(t, []string{"token"}, targets[0].PushAddresses)
}

func TestComputeNotificationTargetsDeduplicatesPerUser(t *testing.T) {
	post := sightingPost()
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) { return post, nil }

	checkIns := noopCheckInRepo()
	checkIns.getVerifiedOverlappingFn = func(_ context.Context, _ uint, _, _ time.Time) ([]models.CheckIn, error) {
		// Ordered checked_in_at DESC: the most recent check-in comes first.
		return []models.CheckIn{
			verifiedCheckIn(9, 2, time.Date(2026, 8, 20, 11, 0, 0, 0, time.UTC)),
			verifiedCheckIn(8, 2, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)),
		}, nil
	}

	svc := newTestMatchService(posts, checkIns, noopNotificationRepo(), noopBlockRepo())

	targets, err := svc.ComputeNotificationTargets(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, uint(9), *targets[0].CheckInID)
}

func TestComputeNotificationTargetsNoOverlaps(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) { return sightingPost(), nil }

	svc := newTestMatchService(posts, noopCheckInRepo(), noopNotificationRepo(), noopBlockRepo())

	targets, err := svc.ComputeNotificationTargets(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestRecordNotificationWriteOnce(t *testing.T) {
	notificationsRepo := noopNotificationRepo()
	notificationsRepo.recordFn = func(_ context.Context, _ *models.MatchNotification) (bool, *models.MatchNotification, error) {
		return false, &models.MatchNotification{ID: 33}, nil
	}
	svc := newTestMatchService(noopPostRepo(), noopCheckInRepo(), notificationsRepo, noopBlockRepo())

	id, alreadyRecorded, err := svc.RecordNotification(context.Background(), 42, 2, nil)
	require.NoError(t, err)
	assert.True(t, alreadyRecorded)
	assert.Equal(t, uint(33), id)
}

func TestNotifyForPostSkipsAlreadyRecorded(t *testing.T) {
	post := sightingPost()
	checkIns := noopCheckInRepo()
	checkIns.getVerifiedOverlappingFn = func(_ context.Context, _ uint, _, _ time.Time) ([]models.CheckIn, error) {
		return []models.CheckIn{
			verifiedCheckIn(1, 2, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)),
			verifiedCheckIn(2, 3, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)),
		}, nil
	}

	notificationsRepo := noopNotificationRepo()
	recorded := 0
	notificationsRepo.recordFn = func(_ context.Context, n *models.MatchNotification) (bool, *models.MatchNotification, error) {
		recorded++
		if n.UserID == 3 {
			// A concurrent run beat us to this user.
			return false, &models.MatchNotification{ID: 99}, nil
		}
		n.ID = uint(recorded)
		return true, nil, nil
	}

	svc := newTestMatchService(noopPostRepo(), checkIns, notificationsRepo, noopBlockRepo())

	sent, err := svc.NotifyForPost(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 2, recorded)
}
