// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"spotted/internal/models"

	"gorm.io/gorm"
)

// CheckInRepository reads the presence store. Check-in rows are written by the
// presence tracker, never by this service.
type CheckInRepository interface {
	GetByID(ctx context.Context, id uint) (*models.CheckIn, error)
	// GetVerifiedOverlapping returns GPS-verified check-ins at a location whose
	// presence interval intersects [windowStart, windowEnd]. Open check-ins
	// count as four hours of presence.
	GetVerifiedOverlapping(ctx context.Context, locationID uint, windowStart, windowEnd time.Time) ([]models.CheckIn, error)
	GetOpenForUser(ctx context.Context, userID uint) (*models.CheckIn, error)
	ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.CheckIn, error)
}

// checkInRepository implements CheckInRepository
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) GetByID(ctx context.Context, id uint) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	if err := r.db.WithContext(ctx).First(&checkIn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("CheckIn", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &checkIn, nil
}

func (r *checkInRepository) GetVerifiedOverlapping(ctx context.Context, locationID uint, windowStart, windowEnd time.Time) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn

	// The SQL mirrors CheckIn.OverlapsWindow: an open check-in is treated as
	// four hours of presence.
	if err := r.db.WithContext(ctx).
		Where("location_id = ? AND verified = ?", locationID, true).
		Where("checked_in_at <= ?", windowEnd).
		Where("COALESCE(checked_out_at, checked_in_at + INTERVAL '4 hours') >= ?", windowStart).
		Order("checked_in_at DESC").
		Find(&checkIns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return checkIns, nil
}

func (r *checkInRepository) GetOpenForUser(ctx context.Context, userID uint) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND checked_out_at IS NULL", userID).
		Order("checked_in_at DESC").
		First(&checkIn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no open check-in
		}
		return nil, models.NewInternalError(err)
	}
	return &checkIn, nil
}

func (r *checkInRepository) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Location").
		Order("checked_in_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&checkIns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return checkIns, nil
}
