package service

import (
	"context"

	"spotted/internal/models"
	"spotted/internal/repository"
)

// BlockService manages block relationships between users.
type BlockService struct {
	blockRepo repository.BlockRepository
	userRepo  repository.UserRepository
}

// NewBlockService returns a new BlockService.
func NewBlockService(blockRepo repository.BlockRepository, userRepo repository.UserRepository) *BlockService {
	return &BlockService{blockRepo: blockRepo, userRepo: userRepo}
}

// Block hides the pair (actor, target) from each other. Blocking twice is a
// no-op; the symmetric visibility rule takes effect from the first call.
func (s *BlockService) Block(ctx context.Context, actorID, targetID uint) error {
	if actorID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	if actorID == targetID {
		return models.NewValidationError("You cannot block yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.blockRepo.Create(ctx, &models.Block{BlockerID: actorID, BlockedID: targetID})
}

// Unblock removes the actor's block on target. The pair stays hidden if the
// target blocked the actor too.
func (s *BlockService) Unblock(ctx context.Context, actorID, targetID uint) error {
	if actorID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	return s.blockRepo.Delete(ctx, actorID, targetID)
}
