package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"spotted/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn     func(context.Context, *models.Post) error
	getByIDFn    func(context.Context, uint) (*models.Post, error)
	listActiveFn func(context.Context) ([]models.Post, error)
	deactivateFn func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListActive(ctx context.Context) ([]models.Post, error) {
	return s.listActiveFn(ctx)
}
func (s *postRepoStub) Deactivate(ctx context.Context, id uint) error {
	return s.deactivateFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:     func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listActiveFn: func(_ context.Context) ([]models.Post, error) { return nil, nil },
		deactivateFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// placeRepoStub is a stub for repository.PlaceRepository.
type placeRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.Place, error)
	getByExternalIDFn func(context.Context, string) (*models.Place, error)
	createFn          func(context.Context, *models.Place) error
}

func (s *placeRepoStub) GetByID(ctx context.Context, id uint) (*models.Place, error) {
	return s.getByIDFn(ctx, id)
}
func (s *placeRepoStub) GetByExternalID(ctx context.Context, externalID string) (*models.Place, error) {
	return s.getByExternalIDFn(ctx, externalID)
}
func (s *placeRepoStub) Create(ctx context.Context, place *models.Place) error {
	return s.createFn(ctx, place)
}

func noopPlaceRepo() *placeRepoStub {
	return &placeRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.Place, error) { return &models.Place{}, nil },
		getByExternalIDFn: func(_ context.Context, _ string) (*models.Place, error) {
			return &models.Place{}, nil
		},
		createFn: func(_ context.Context, _ *models.Place) error { return nil },
	}
}

// responseRepoStub is a stub for repository.ResponseRepository.
type responseRepoStub struct {
	getByIDFn                func(context.Context, uint) (*models.Response, error)
	getByPostAndResponderFn  func(context.Context, uint, uint) (*models.Response, error)
	createWithConversationFn func(context.Context, *models.Response, *models.Conversation) error
	updateStatusFn           func(context.Context, uint, models.ResponseStatus, time.Time) error
}

func (s *responseRepoStub) GetByID(ctx context.Context, id uint) (*models.Response, error) {
	return s.getByIDFn(ctx, id)
}
func (s *responseRepoStub) GetByPostAndResponder(ctx context.Context, postID, responderID uint) (*models.Response, error) {
	return s.getByPostAndResponderFn(ctx, postID, responderID)
}
func (s *responseRepoStub) CreateWithConversation(ctx context.Context, response *models.Response, conversation *models.Conversation) error {
	return s.createWithConversationFn(ctx, response, conversation)
}
func (s *responseRepoStub) UpdateStatus(ctx context.Context, responseID uint, status models.ResponseStatus, decidedAt time.Time) error {
	return s.updateStatusFn(ctx, responseID, status, decidedAt)
}

func noopResponseRepo() *responseRepoStub {
	return &responseRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.Response, error) { return &models.Response{}, nil },
		getByPostAndResponderFn: func(_ context.Context, _, _ uint) (*models.Response, error) {
			return nil, nil
		},
		createWithConversationFn: func(_ context.Context, _ *models.Response, _ *models.Conversation) error {
			return nil
		},
		updateStatusFn: func(_ context.Context, _ uint, _ models.ResponseStatus, _ time.Time) error {
			return nil
		},
	}
}

// conversationRepoStub is a stub for repository.ConversationRepository.
type conversationRepoStub struct {
	getByIDFn              func(context.Context, uint) (*models.Conversation, error)
	getByPostAndConsumerFn func(context.Context, uint, uint) (*models.Conversation, error)
	getByResponseIDFn      func(context.Context, uint) (*models.Conversation, error)
	listForUserFn          func(context.Context, uint, int, int) ([]models.Conversation, error)
}

func (s *conversationRepoStub) GetByID(ctx context.Context, id uint) (*models.Conversation, error) {
	return s.getByIDFn(ctx, id)
}
func (s *conversationRepoStub) GetByPostAndConsumer(ctx context.Context, postID, consumerID uint) (*models.Conversation, error) {
	return s.getByPostAndConsumerFn(ctx, postID, consumerID)
}
func (s *conversationRepoStub) GetByResponseID(ctx context.Context, responseID uint) (*models.Conversation, error) {
	return s.getByResponseIDFn(ctx, responseID)
}
func (s *conversationRepoStub) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Conversation, error) {
	return s.listForUserFn(ctx, userID, limit, offset)
}

func noopConversationRepo() *conversationRepoStub {
	return &conversationRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.Conversation, error) {
			return &models.Conversation{}, nil
		},
		getByPostAndConsumerFn: func(_ context.Context, _, _ uint) (*models.Conversation, error) {
			return nil, nil
		},
		getByResponseIDFn: func(_ context.Context, _ uint) (*models.Conversation, error) {
			return nil, nil
		},
		listForUserFn: func(_ context.Context, _ uint, _, _ int) ([]models.Conversation, error) {
			return nil, nil
		},
	}
}

// checkInRepoStub is a stub for repository.CheckInRepository.
type checkInRepoStub struct {
	getByIDFn                func(context.Context, uint) (*models.CheckIn, error)
	getVerifiedOverlappingFn func(context.Context, uint, time.Time, time.Time) ([]models.CheckIn, error)
	getOpenForUserFn         func(context.Context, uint) (*models.CheckIn, error)
	listForUserFn            func(context.Context, uint, int, int) ([]models.CheckIn, error)
}

func (s *checkInRepoStub) GetByID(ctx context.Context, id uint) (*models.CheckIn, error) {
	return s.getByIDFn(ctx, id)
}
func (s *checkInRepoStub) GetVerifiedOverlapping(ctx context.Context, locationID uint, windowStart, windowEnd time.Time) ([]models.CheckIn, error) {
	return s.getVerifiedOverlappingFn(ctx, locationID, windowStart, windowEnd)
}
func (s *checkInRepoStub) GetOpenForUser(ctx context.Context, userID uint) (*models.CheckIn, error) {
	return s.getOpenForUserFn(ctx, userID)
}
func (s *checkInRepoStub) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.CheckIn, error) {
	return s.listForUserFn(ctx, userID, limit, offset)
}

func noopCheckInRepo() *checkInRepoStub {
	return &checkInRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.CheckIn, error) { return &models.CheckIn{}, nil },
		getVerifiedOverlappingFn: func(_ context.Context, _ uint, _, _ time.Time) ([]models.CheckIn, error) {
			return nil, nil
		},
		getOpenForUserFn: func(_ context.Context, _ uint) (*models.CheckIn, error) { return nil, nil },
		listForUserFn: func(_ context.Context, _ uint, _, _ int) ([]models.CheckIn, error) {
			return nil, nil
		},
	}
}

// favoriteRepoStub is a stub for repository.FavoriteRepository.
type favoriteRepoStub struct {
	createFn      func(context.Context, *models.FavoriteLocation) error
	deleteFn      func(context.Context, uint, string) error
	listForUserFn func(context.Context, uint) ([]models.FavoriteLocation, error)
	hasFavoriteFn func(context.Context, uint, string) (bool, error)
}

func (s *favoriteRepoStub) Create(ctx context.Context, favorite *models.FavoriteLocation) error {
	return s.createFn(ctx, favorite)
}
func (s *favoriteRepoStub) Delete(ctx context.Context, userID uint, placeID string) error {
	return s.deleteFn(ctx, userID, placeID)
}
func (s *favoriteRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.FavoriteLocation, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *favoriteRepoStub) HasFavorite(ctx context.Context, userID uint, placeID string) (bool, error) {
	return s.hasFavoriteFn(ctx, userID, placeID)
}

func noopFavoriteRepo() *favoriteRepoStub {
	return &favoriteRepoStub{
		createFn:      func(_ context.Context, _ *models.FavoriteLocation) error { return nil },
		deleteFn:      func(_ context.Context, _ uint, _ string) error { return nil },
		listForUserFn: func(_ context.Context, _ uint) ([]models.FavoriteLocation, error) { return nil, nil },
		hasFavoriteFn: func(_ context.Context, _ uint, _ string) (bool, error) { return false, nil },
	}
}

// blockRepoStub is a stub for repository.BlockRepository.
type blockRepoStub struct {
	createFn            func(context.Context, *models.Block) error
	deleteFn            func(context.Context, uint, uint) error
	existsBetweenFn     func(context.Context, uint, uint) (bool, error)
	blockedPartnerIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *blockRepoStub) Create(ctx context.Context, block *models.Block) error {
	return s.createFn(ctx, block)
}
func (s *blockRepoStub) Delete(ctx context.Context, blockerID, blockedID uint) error {
	return s.deleteFn(ctx, blockerID, blockedID)
}
func (s *blockRepoStub) ExistsBetween(ctx context.Context, userID1, userID2 uint) (bool, error) {
	return s.existsBetweenFn(ctx, userID1, userID2)
}
func (s *blockRepoStub) BlockedPartnerIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.blockedPartnerIDsFn(ctx, userID)
}

func noopBlockRepo() *blockRepoStub {
	return &blockRepoStub{
		createFn:            func(_ context.Context, _ *models.Block) error { return nil },
		deleteFn:            func(_ context.Context, _, _ uint) error { return nil },
		existsBetweenFn:     func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		blockedPartnerIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// notificationRepoStub is a stub for repository.NotificationRepository.
type notificationRepoStub struct {
	recordFn                     func(context.Context, *models.MatchNotification) (bool, *models.MatchNotification, error)
	getByPostAndUserFn           func(context.Context, uint, uint) (*models.MatchNotification, error)
	notifiedUserIDsFn            func(context.Context, uint) ([]uint, error)
	listForUserFn                func(context.Context, uint, int, int) ([]models.MatchNotification, error)
	markReadFn                   func(context.Context, uint, uint, time.Time) error
	markClickedFn                func(context.Context, uint, uint, time.Time) error
	matchAlertsDisabledUserIDsFn func(context.Context, []uint) ([]uint, error)
	pushAddressesByUserFn        func(context.Context, []uint) (map[uint][]string, error)
}

func (s *notificationRepoStub) Record(ctx context.Context, notification *models.MatchNotification) (bool, *models.MatchNotification, error) {
	return s.recordFn(ctx, notification)
}
func (s *notificationRepoStub) GetByPostAndUser(ctx context.Context, postID, userID uint) (*models.MatchNotification, error) {
	return s.getByPostAndUserFn(ctx, postID, userID)
}
func (s *notificationRepoStub) NotifiedUserIDs(ctx context.Context, postID uint) ([]uint, error) {
	return s.notifiedUserIDsFn(ctx, postID)
}
func (s *notificationRepoStub) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.MatchNotification, error) {
	return s.listForUserFn(ctx, userID, limit, offset)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, notificationID, userID uint, at time.Time) error {
	return s.markReadFn(ctx, notificationID, userID, at)
}
func (s *notificationRepoStub) MarkClicked(ctx context.Context, notificationID, userID uint, at time.Time) error {
	return s.markClickedFn(ctx, notificationID, userID, at)
}
func (s *notificationRepoStub) MatchAlertsDisabledUserIDs(ctx context.Context, userIDs []uint) ([]uint, error) {
	return s.matchAlertsDisabledUserIDsFn(ctx, userIDs)
}
func (s *notificationRepoStub) PushAddressesByUser(ctx context.Context, userIDs []uint) (map[uint][]string, error) {
	return s.pushAddressesByUserFn(ctx, userIDs)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		recordFn: func(_ context.Context, n *models.MatchNotification) (bool, *models.MatchNotification, error) {
			n.ID = 1
			return true, nil, nil
		},
		getByPostAndUserFn: func(_ context.Context, _, _ uint) (*models.MatchNotification, error) {
			return nil, nil
		},
		notifiedUserIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		listForUserFn: func(_ context.Context, _ uint, _, _ int) ([]models.MatchNotification, error) {
			return nil, nil
		},
		markReadFn:                   func(_ context.Context, _, _ uint, _ time.Time) error { return nil },
		markClickedFn:                func(_ context.Context, _, _ uint, _ time.Time) error { return nil },
		matchAlertsDisabledUserIDsFn: func(_ context.Context, _ []uint) ([]uint, error) { return nil, nil },
		pushAddressesByUserFn: func(_ context.Context, ids []uint) (map[uint][]string, error) {
			addrs := make(map[uint][]string, len(ids))
			for _, id := range ids {
				addrs[id] = []string{"token"}
			}
			return addrs, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
