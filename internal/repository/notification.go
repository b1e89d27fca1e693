package repository

import (
	"context"
	"errors"
	"time"

	"spotted/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository defines the interface for match notification,
// preference, and push address data operations.
type NotificationRepository interface {
	// Record inserts a match notification. It is an idempotent recording: when
	// the (post, user) pair already exists the insert is a no-op and the
	// existing row is returned with created=false.
	Record(ctx context.Context, notification *models.MatchNotification) (created bool, existing *models.MatchNotification, err error)
	GetByPostAndUser(ctx context.Context, postID, userID uint) (*models.MatchNotification, error)
	// NotifiedUserIDs returns user ids already holding a notification for the post.
	NotifiedUserIDs(ctx context.Context, postID uint) ([]uint, error)
	ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.MatchNotification, error)
	MarkRead(ctx context.Context, notificationID, userID uint, at time.Time) error
	MarkClicked(ctx context.Context, notificationID, userID uint, at time.Time) error

	// MatchAlertsDisabledUserIDs filters candidates down to those who opted
	// out of match alerts. Absent preference rows count as enabled.
	MatchAlertsDisabledUserIDs(ctx context.Context, userIDs []uint) ([]uint, error)
	// PushAddressesByUser returns each candidate's valid push addresses.
	// Users with no address on file are absent from the map.
	PushAddressesByUser(ctx context.Context, userIDs []uint) (map[uint][]string, error)
}

// notificationRepository implements NotificationRepository
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Record(ctx context.Context, notification *models.MatchNotification) (bool, *models.MatchNotification, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(notification)
	if result.Error != nil {
		return false, nil, models.NewInternalError(result.Error)
	}

	if result.RowsAffected > 0 {
		return true, notification, nil
	}

	// Someone already recorded this pair; hand back their row.
	existing, err := r.GetByPostAndUser(ctx, notification.PostID, notification.UserID)
	if err != nil {
		return false, nil, err
	}
	return false, existing, nil
}

func (r *notificationRepository) GetByPostAndUser(ctx context.Context, postID, userID uint) (*models.MatchNotification, error) {
	var notification models.MatchNotification
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("MatchNotification", postID)
		}
		return nil, models.NewInternalError(err)
	}
	return &notification, nil
}

func (r *notificationRepository) NotifiedUserIDs(ctx context.Context, postID uint) ([]uint, error) {
	var userIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.MatchNotification{}).
		Where("post_id = ?", postID).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return userIDs, nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.MatchNotification, error) {
	var notifications []models.MatchNotification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Post").
		Order("sent_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, userID uint, at time.Time) error {
	return r.setTimestamp(ctx, notificationID, userID, "read_at", at)
}

func (r *notificationRepository) MarkClicked(ctx context.Context, notificationID, userID uint, at time.Time) error {
	return r.setTimestamp(ctx, notificationID, userID, "clicked_at", at)
}

// setTimestamp sets a transition column once; an already-set column is left
// untouched so the first read/click time survives retries.
func (r *notificationRepository) setTimestamp(ctx context.Context, notificationID, userID uint, column string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.MatchNotification{}).
		Where("id = ? AND user_id = ? AND "+column+" IS NULL", notificationID, userID).
		Update(column, at)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		// Either not the user's notification or already transitioned. Confirm
		// it exists and belongs to them before treating this as success.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.MatchNotification{}).
			Where("id = ? AND user_id = ?", notificationID, userID).
			Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		if count == 0 {
			return models.NewNotFoundError("MatchNotification", notificationID)
		}
	}
	return nil
}

func (r *notificationRepository) MatchAlertsDisabledUserIDs(ctx context.Context, userIDs []uint) ([]uint, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var disabled []uint
	if err := r.db.WithContext(ctx).
		Model(&models.NotificationPreference{}).
		Where("user_id IN ? AND match_alerts = ?", userIDs, false).
		Pluck("user_id", &disabled).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return disabled, nil
}

func (r *notificationRepository) PushAddressesByUser(ctx context.Context, userIDs []uint) (map[uint][]string, error) {
	if len(userIDs) == 0 {
		return map[uint][]string{}, nil
	}
	var tokens []models.PushToken
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&tokens).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	addresses := make(map[uint][]string, len(tokens))
	for _, t := range tokens {
		if t.Token == "" {
			continue
		}
		addresses[t.UserID] = append(addresses[t.UserID], t.Token)
	}
	return addresses, nil
}
