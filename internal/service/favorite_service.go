package service

import (
	"context"
	"strings"

	"spotted/internal/models"
	"spotted/internal/repository"
)

// FavoriteService manages a user's regular spots. Favorites key on the
// external place registry id, so a favorite can exist before any post or
// check-in ever references the place.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

// NewFavoriteService returns a new FavoriteService.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// Add marks placeID as one of the actor's regular spots. Adding an existing
// favorite is a no-op.
func (s *FavoriteService) Add(ctx context.Context, actorID uint, placeID, customName string) (*models.FavoriteLocation, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if strings.TrimSpace(placeID) == "" {
		return nil, models.NewValidationError("Place ID is required")
	}
	favorite := &models.FavoriteLocation{
		UserID:     actorID,
		PlaceID:    placeID,
		CustomName: customName,
	}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// Remove deletes the actor's favorite for placeID.
func (s *FavoriteService) Remove(ctx context.Context, actorID uint, placeID string) error {
	if actorID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	return s.favoriteRepo.Delete(ctx, actorID, placeID)
}

// List returns the actor's favorites, newest first.
func (s *FavoriteService) List(ctx context.Context, actorID uint) ([]models.FavoriteLocation, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	return s.favoriteRepo.ListForUser(ctx, actorID)
}
