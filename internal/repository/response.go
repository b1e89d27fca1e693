package repository

import (
	"context"
	"errors"
	"time"

	"spotted/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicatePair is returned when the (post, responder) pair already holds a
// response or conversation. Callers resolve it by fetching the winning rows
// and returning their identifiers; it is never surfaced as a failure.
var ErrDuplicatePair = errors.New("response or conversation already exists for this post and user")

// ResponseRepository defines the interface for response and paired
// conversation data operations.
type ResponseRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Response, error)
	// GetByPostAndResponder returns (nil, nil) when no response exists.
	GetByPostAndResponder(ctx context.Context, postID, responderID uint) (*models.Response, error)
	// CreateWithConversation inserts the response and its paired conversation
	// in one transaction. Either both rows commit or neither does; a unique
	// violation on either insert rolls back and yields ErrDuplicatePair.
	CreateWithConversation(ctx context.Context, response *models.Response, conversation *models.Conversation) error
	// UpdateStatus applies the producer's decision to the response and mirrors
	// it into the conversation atomically.
	UpdateStatus(ctx context.Context, responseID uint, status models.ResponseStatus, decidedAt time.Time) error
}

// responseRepository implements ResponseRepository
type responseRepository struct {
	db *gorm.DB
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) GetByID(ctx context.Context, id uint) (*models.Response, error) {
	var response models.Response
	if err := r.db.WithContext(ctx).Preload("Post").First(&response, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Response", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &response, nil
}

func (r *responseRepository) GetByPostAndResponder(ctx context.Context, postID, responderID uint) (*models.Response, error) {
	var response models.Response
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND responder_id = ?", postID, responderID).
		First(&response).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no response exists
		}
		return nil, models.NewInternalError(err)
	}
	return &response, nil
}

func (r *responseRepository) CreateWithConversation(ctx context.Context, response *models.Response, conversation *models.Conversation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(response).Error; err != nil {
			return err
		}
		conversation.ResponseID = response.ID
		return tx.Create(conversation).Error
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicatePair
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *responseRepository) UpdateStatus(ctx context.Context, responseID uint, status models.ResponseStatus, decidedAt time.Time) error {
	convStatus := models.ConversationStatusDeclined
	producerAccepted := false
	if status == models.ResponseStatusAccepted {
		convStatus = models.ConversationStatusActive
		producerAccepted = true
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Response{}).
			Where("id = ?", responseID).
			Updates(map[string]interface{}{
				"status":       status,
				"responded_at": decidedAt,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Conversation{}).
			Where("response_id = ?", responseID).
			Updates(map[string]interface{}{
				"status":            convStatus,
				"producer_accepted": producerAccepted,
			}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
