package service

import (
	"context"
	"time"

	"spotted/internal/models"
	"spotted/internal/repository"
)

// NotificationService exposes a user's match notification history and the
// read/click lifecycle transitions.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns the actor's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, actorID uint, limit, offset int) ([]models.MatchNotification, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.notificationRepo.ListForUser(ctx, actorID, limit, offset)
}

// MarkRead records the first time the actor saw the notification. Set-once:
// repeat calls keep the original timestamp.
func (s *NotificationService) MarkRead(ctx context.Context, actorID, notificationID uint) error {
	if actorID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	return s.notificationRepo.MarkRead(ctx, notificationID, actorID, time.Now().UTC())
}

// MarkClicked records the first time the actor opened the notification.
func (s *NotificationService) MarkClicked(ctx context.Context, actorID, notificationID uint) error {
	if actorID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	return s.notificationRepo.MarkClicked(ctx, notificationID, actorID, time.Now().UTC())
}
