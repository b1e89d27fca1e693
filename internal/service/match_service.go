package service

import (
	"context"
	"time"

	"spotted/internal/middleware"
	"spotted/internal/models"
	"spotted/internal/notifications"
	"spotted/internal/observability"
	"spotted/internal/repository"
)

// MatchTarget is one user selected to receive a match alert for a post,
// together with the check-in that matched and the push addresses the
// dispatcher should deliver to.
type MatchTarget struct {
	UserID        uint
	CheckInID     *uint
	PushAddresses []string
}

// MatchService selects match alert recipients for new posts and records each
// selection exactly once.
type MatchService struct {
	postRepo         repository.PostRepository
	checkInRepo      repository.CheckInRepository
	notificationRepo repository.NotificationRepository
	blockRepo        repository.BlockRepository
	notifier         *notifications.Notifier
}

// NewMatchService returns a new MatchService.
func NewMatchService(
	postRepo repository.PostRepository,
	checkInRepo repository.CheckInRepository,
	notificationRepo repository.NotificationRepository,
	blockRepo repository.BlockRepository,
	notifier *notifications.Notifier,
) *MatchService {
	return &MatchService{
		postRepo:         postRepo,
		checkInRepo:      checkInRepo,
		notificationRepo: notificationRepo,
		blockRepo:        blockRepo,
		notifier:         notifier,
	}
}

// ComputeNotificationTargets returns the users who should be alerted about a
// post: holders of a verified check-in at the post's place overlapping its
// sighting window, minus the producer, users already notified for this post,
// users in a block relationship with the producer in either direction, users
// who opted out of match alerts, and users with no deliverable push address.
// One target per user even when several check-ins overlap.
func (s *MatchService) ComputeNotificationTargets(ctx context.Context, postID uint) ([]MatchTarget, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.targetsForPost(ctx, post)
}

func (s *MatchService) targetsForPost(ctx context.Context, post *models.Post) ([]MatchTarget, error) {
	windowStart, windowEnd := post.SightingWindow()
	checkIns, err := s.checkInRepo.GetVerifiedOverlapping(ctx, post.LocationID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	if len(checkIns) == 0 {
		return nil, nil
	}

	// Most recent check-in per user wins; the repository orders by
	// checked_in_at descending so first-seen is the one to keep.
	candidates := make([]MatchTarget, 0, len(checkIns))
	seen := make(map[uint]bool, len(checkIns))
	for _, ci := range checkIns {
		if ci.UserID == post.ProducerID || seen[ci.UserID] {
			continue
		}
		seen[ci.UserID] = true
		checkInID := ci.ID
		candidates = append(candidates, MatchTarget{UserID: ci.UserID, CheckInID: &checkInID})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	exclude := make(map[uint]bool)

	notified, err := s.notificationRepo.NotifiedUserIDs(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	for _, id := range notified {
		exclude[id] = true
	}

	blockedPartners, err := s.blockRepo.BlockedPartnerIDs(ctx, post.ProducerID)
	if err != nil {
		return nil, err
	}
	for _, id := range blockedPartners {
		exclude[id] = true
	}

	candidateIDs := make([]uint, 0, len(candidates))
	for _, c := range candidates {
		if !exclude[c.UserID] {
			candidateIDs = append(candidateIDs, c.UserID)
		}
	}
	if len(candidateIDs) == 0 {
		return nil, nil
	}

	optedOut, err := s.notificationRepo.MatchAlertsDisabledUserIDs(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range optedOut {
		exclude[id] = true
	}

	addresses, err := s.notificationRepo.PushAddressesByUser(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	targets := make([]MatchTarget, 0, len(candidates))
	for _, c := range candidates {
		if exclude[c.UserID] {
			continue
		}
		addrs := addresses[c.UserID]
		if len(addrs) == 0 {
			continue
		}
		c.PushAddresses = addrs
		targets = append(targets, c)
	}
	return targets, nil
}

// RecordNotification durably records that userID was selected for postID.
// Write-once per (post, user): when a notification already exists its id comes
// back with alreadyRecorded set, and nothing is written.
func (s *MatchService) RecordNotification(ctx context.Context, postID, userID uint, checkInID *uint) (uint, bool, error) {
	record := &models.MatchNotification{
		PostID:           postID,
		UserID:           userID,
		CheckInID:        checkInID,
		NotificationType: models.NotificationTypeTierOneMatch,
		SentAt:           time.Now().UTC(),
	}
	created, existing, err := s.notificationRepo.Record(ctx, record)
	if err != nil {
		return 0, false, err
	}
	if !created {
		return existing.ID, true, nil
	}
	observability.NotificationsRecorded.Inc()
	return record.ID, false, nil
}

// NotifyForPost runs the matcher for a freshly created post: compute targets,
// record each selection, and hand newly recorded alerts to the dispatcher.
// Recording is write-once per (post, user), so re-running after a partial
// failure only publishes for users not yet recorded. Publish failures are
// logged and do not fail the caller; the dispatcher owns delivery.
func (s *MatchService) NotifyForPost(ctx context.Context, post *models.Post) (int, error) {
	targets, err := s.targetsForPost(ctx, post)
	if err != nil {
		return 0, err
	}
	observability.NotificationTargets.Observe(float64(len(targets)))

	sent := 0
	for _, target := range targets {
		_, alreadyRecorded, err := s.RecordNotification(ctx, post.ID, target.UserID, target.CheckInID)
		if err != nil {
			return sent, err
		}
		if alreadyRecorded {
			// A concurrent matcher run already alerted this user.
			continue
		}

		alert := notifications.MatchAlert{
			PostID:    post.ID,
			UserID:    target.UserID,
			CheckInID: target.CheckInID,
			Addresses: target.PushAddresses,
			Note:      post.Note,
			SentAt:    time.Now().UTC(),
		}
		if err := s.notifier.PublishMatchAlert(ctx, alert); err != nil {
			middleware.Logger.WarnContext(ctx, "match alert publish failed",
				"post_id", post.ID, "user_id", target.UserID, "error", err)
		}
		sent++
	}
	return sent, nil
}
