package repository

import (
	"context"
	"errors"

	"spotted/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines the interface for favorite-place data operations.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.FavoriteLocation) error
	Delete(ctx context.Context, userID uint, placeID string) error
	ListForUser(ctx context.Context, userID uint) ([]models.FavoriteLocation, error)
	// HasFavorite reports whether the user declared the external place id as a
	// regular spot.
	HasFavorite(ctx context.Context, userID uint, placeID string) (bool, error)
}

// favoriteRepository implements FavoriteRepository
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.FavoriteLocation) error {
	// Re-favoriting the same place is a no-op, not an error.
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID uint, placeID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Delete(&models.FavoriteLocation{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("FavoriteLocation", placeID)
	}
	return nil
}

func (r *favoriteRepository) ListForUser(ctx context.Context, userID uint) ([]models.FavoriteLocation, error) {
	var favorites []models.FavoriteLocation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}

func (r *favoriteRepository) HasFavorite(ctx context.Context, userID uint, placeID string) (bool, error) {
	var favorite models.FavoriteLocation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return true, nil
}
