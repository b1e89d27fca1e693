package service

import (
	"context"

	"spotted/internal/models"
)

// resolveTier computes the verification tier for a claim against post. A
// claimed check-in is validated hard: ownership, location, and window overlap
// failures reject the claim instead of silently downgrading it. Without a
// check-in the claimant's favorite places decide between the middle and
// bottom tiers.
func (s *ResponseService) resolveTier(ctx context.Context, actorID uint, post *models.Post, checkInID *uint) (models.VerificationTier, error) {
	if checkInID != nil {
		return s.tierFromCheckIn(ctx, actorID, post, *checkInID)
	}

	hasFavorite, err := s.favoriteRepo.HasFavorite(ctx, actorID, post.Location.ExternalPlaceID)
	if err != nil {
		return "", err
	}
	if hasFavorite {
		return models.TierRegularSpot, nil
	}
	return models.TierUnverifiedClaim, nil
}

func (s *ResponseService) tierFromCheckIn(ctx context.Context, actorID uint, post *models.Post, checkInID uint) (models.VerificationTier, error) {
	checkIn, err := s.checkInRepo.GetByID(ctx, checkInID)
	if err != nil {
		return "", err
	}
	if checkIn.UserID != actorID {
		return "", rejectClaim("checkin_not_owned", models.NewValidationError("Check-in does not belong to you"))
	}
	if checkIn.LocationID != post.LocationID {
		return "", rejectClaim("checkin_wrong_place", models.NewValidationError("Check-in is at a different place than the sighting"))
	}
	start, end := post.SightingWindow()
	if !checkIn.OverlapsWindow(start, end) {
		return "", rejectClaim("checkin_outside_window", models.NewValidationError("Check-in does not overlap the sighting window"))
	}
	if checkIn.Verified {
		return models.TierVerifiedCheckIn, nil
	}
	// An unverified check-in proves nothing the tracker confirmed. The
	// favorite-place signal only applies when no check-in is claimed at all.
	return models.TierUnverifiedClaim, nil
}
