package repository

import (
	"context"
	"errors"

	"spotted/internal/models"

	"gorm.io/gorm"
)

// ConversationRepository defines the interface for conversation data operations.
// Conversations are created only by the claim binder; these are read paths.
type ConversationRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Conversation, error)
	// GetByPostAndConsumer returns (nil, nil) when no conversation exists.
	GetByPostAndConsumer(ctx context.Context, postID, consumerID uint) (*models.Conversation, error)
	GetByResponseID(ctx context.Context, responseID uint) (*models.Conversation, error)
	ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Conversation, error)
}

// conversationRepository implements ConversationRepository
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) GetByID(ctx context.Context, id uint) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.WithContext(ctx).
		Preload("Producer").
		Preload("Consumer").
		First(&conversation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Conversation", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &conversation, nil
}

func (r *conversationRepository) GetByPostAndConsumer(ctx context.Context, postID, consumerID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND consumer_id = ?", postID, consumerID).
		First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no conversation exists
		}
		return nil, models.NewInternalError(err)
	}
	return &conversation, nil
}

func (r *conversationRepository) GetByResponseID(ctx context.Context, responseID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.WithContext(ctx).
		Where("response_id = ?", responseID).
		First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Conversation", responseID)
		}
		return nil, models.NewInternalError(err)
	}
	return &conversation, nil
}

func (r *conversationRepository) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := r.db.WithContext(ctx).
		Where("producer_id = ? OR consumer_id = ?", userID, userID).
		Preload("Post").
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&conversations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conversations, nil
}
