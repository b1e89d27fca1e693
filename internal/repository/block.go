package repository

import (
	"context"

	"spotted/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlockRepository defines the interface for block data operations. Visibility
// is symmetric, so every read considers both directions of the pair.
type BlockRepository interface {
	Create(ctx context.Context, block *models.Block) error
	Delete(ctx context.Context, blockerID, blockedID uint) error
	// ExistsBetween reports whether a block exists in either direction.
	ExistsBetween(ctx context.Context, userID1, userID2 uint) (bool, error)
	// BlockedPartnerIDs returns every user id the given user has a block
	// relationship with, in either direction.
	BlockedPartnerIDs(ctx context.Context, userID uint) ([]uint, error)
}

// blockRepository implements BlockRepository
type blockRepository struct {
	db *gorm.DB
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Create(ctx context.Context, block *models.Block) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(block).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blockRepository) Delete(ctx context.Context, blockerID, blockedID uint) error {
	result := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Block", blockedID)
	}
	return nil
}

func (r *blockRepository) ExistsBetween(ctx context.Context, userID1, userID2 uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userID1, userID2, userID2, userID1).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *blockRepository) BlockedPartnerIDs(ctx context.Context, userID uint) ([]uint, error) {
	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("blocker_id = ? OR blocked_id = ?", userID, userID).
		Find(&blocks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	partners := make([]uint, 0, len(blocks))
	for _, b := range blocks {
		if b.BlockerID == userID {
			partners = append(partners, b.BlockedID)
		} else {
			partners = append(partners, b.BlockerID)
		}
	}
	return partners, nil
}
