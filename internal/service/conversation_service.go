package service

import (
	"context"

	"spotted/internal/models"
	"spotted/internal/repository"
)

// ConversationService exposes the conversations a user participates in.
// Conversations are created only by the claim binder; there is no direct
// creation path.
type ConversationService struct {
	conversationRepo repository.ConversationRepository
}

// NewConversationService returns a new ConversationService.
func NewConversationService(conversationRepo repository.ConversationRepository) *ConversationService {
	return &ConversationService{conversationRepo: conversationRepo}
}

// List returns conversations the actor participates in, newest first.
func (s *ConversationService) List(ctx context.Context, actorID uint, limit, offset int) ([]models.Conversation, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.conversationRepo.ListForUser(ctx, actorID, limit, offset)
}

// Get returns one conversation, visible only to its two participants.
func (s *ConversationService) Get(ctx context.Context, actorID, conversationID uint) (*models.Conversation, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	conversation, err := s.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation.ProducerID != actorID && conversation.ConsumerID != actorID {
		return nil, models.NewNotFoundError("Conversation", conversationID)
	}
	return conversation, nil
}
