package repository

import (
	"context"
	"errors"

	"spotted/internal/models"

	"gorm.io/gorm"
)

// PlaceRepository defines the interface for place data operations. Place rows
// are imported from the external place registry.
type PlaceRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Place, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.Place, error)
	Create(ctx context.Context, place *models.Place) error
}

// placeRepository implements PlaceRepository
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) GetByID(ctx context.Context, id uint) (*models.Place, error) {
	var place models.Place
	if err := r.db.WithContext(ctx).First(&place, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Place", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &place, nil
}

func (r *placeRepository) GetByExternalID(ctx context.Context, externalID string) (*models.Place, error) {
	var place models.Place
	if err := r.db.WithContext(ctx).Where("external_place_id = ?", externalID).First(&place).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Place", externalID)
		}
		return nil, models.NewInternalError(err)
	}
	return &place, nil
}

func (r *placeRepository) Create(ctx context.Context, place *models.Place) error {
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Place already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}
