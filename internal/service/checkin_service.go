package service

import (
	"context"

	"spotted/internal/models"
	"spotted/internal/repository"
)

// CheckInService gives users read access to their own presence history.
// Check-in rows are written by the external presence tracker; this service
// never mutates them.
type CheckInService struct {
	checkInRepo repository.CheckInRepository
}

// NewCheckInService returns a new CheckInService.
func NewCheckInService(checkInRepo repository.CheckInRepository) *CheckInService {
	return &CheckInService{checkInRepo: checkInRepo}
}

// List returns the actor's check-ins, most recent arrival first.
func (s *CheckInService) List(ctx context.Context, actorID uint, limit, offset int) ([]models.CheckIn, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.checkInRepo.ListForUser(ctx, actorID, limit, offset)
}

// Current returns the actor's open check-in, or nil when they are not
// checked in anywhere.
func (s *CheckInService) Current(ctx context.Context, actorID uint) (*models.CheckIn, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	return s.checkInRepo.GetOpenForUser(ctx, actorID)
}
