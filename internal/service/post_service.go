package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"spotted/internal/middleware"
	"spotted/internal/models"
	"spotted/internal/ranking"
	"spotted/internal/repository"
)

// CreatePostInput carries everything needed to publish a sighting. The place
// fields come from the client's place registry lookup; an unknown
// ExternalPlaceID creates the place row on first use.
type CreatePostInput struct {
	Note              string     `json:"note"`
	TargetDescription string     `json:"target_description"`
	SightingDate      *time.Time `json:"sighting_date,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`

	PlaceExternalID string  `json:"place_external_id"`
	PlaceName       string  `json:"place_name"`
	PlaceAddress    string  `json:"place_address"`
	PlaceLatitude   float64 `json:"place_latitude"`
	PlaceLongitude  float64 `json:"place_longitude"`
}

// PostService handles post publication, the feed, and deactivation. Publishing
// a post runs the matcher inline.
type PostService struct {
	postRepo  repository.PostRepository
	placeRepo repository.PlaceRepository
	matches   *MatchService
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, placeRepo repository.PlaceRepository, matches *MatchService) *PostService {
	return &PostService{postRepo: postRepo, placeRepo: placeRepo, matches: matches}
}

// CreatePost validates and publishes a sighting, then runs the matcher once
// for it. Matcher failures after the post is committed are logged, not
// returned: the post exists either way and recording is write-once, so a
// later re-run alerts only the users that were missed.
func (s *PostService) CreatePost(ctx context.Context, actorID uint, input CreatePostInput) (*models.Post, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if strings.TrimSpace(input.Note) == "" {
		return nil, models.NewValidationError("Note is required")
	}
	if strings.TrimSpace(input.TargetDescription) == "" {
		return nil, models.NewValidationError("Target description is required")
	}
	if strings.TrimSpace(input.PlaceExternalID) == "" {
		return nil, models.NewValidationError("Place is required")
	}
	now := time.Now().UTC()
	if input.SightingDate != nil && input.SightingDate.After(now) {
		return nil, models.NewValidationError("Sighting date cannot be in the future")
	}
	if input.ExpiresAt != nil && !input.ExpiresAt.After(now) {
		return nil, models.NewValidationError("Expiry must be in the future")
	}

	place, err := s.resolvePlace(ctx, input)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Note:              input.Note,
		TargetDescription: input.TargetDescription,
		ProducerID:        actorID,
		LocationID:        place.ID,
		SightingDate:      input.SightingDate,
		ExpiresAt:         input.ExpiresAt,
		IsActive:          true,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	post.Location = *place

	if _, err := s.matches.NotifyForPost(ctx, post); err != nil {
		middleware.Logger.ErrorContext(ctx, "matcher run failed",
			"post_id", post.ID, "error", err)
	}
	return post, nil
}

// resolvePlace returns the place row for the input's external id, creating it
// from the supplied registry data on first use.
func (s *PostService) resolvePlace(ctx context.Context, input CreatePostInput) (*models.Place, error) {
	place, err := s.placeRepo.GetByExternalID(ctx, input.PlaceExternalID)
	if err == nil {
		return place, nil
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		return nil, err
	}

	if strings.TrimSpace(input.PlaceName) == "" {
		return nil, models.NewValidationError("Place name is required for a new place")
	}
	place = &models.Place{
		Name:            input.PlaceName,
		ExternalPlaceID: input.PlaceExternalID,
		Address:         input.PlaceAddress,
		Latitude:        input.PlaceLatitude,
		Longitude:       input.PlaceLongitude,
	}
	if err := s.placeRepo.Create(ctx, place); err != nil {
		// Lost a race with another post against the same new place.
		if existing, exErr := s.placeRepo.GetByExternalID(ctx, input.PlaceExternalID); exErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return place, nil
}

// GetPost returns a post by id.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// Feed returns the active, unexpired posts ranked by sighting recency.
// Ranking depends on the current clock, so it is applied per request over the
// whole cached active list; pagination slices the ranked set so the order
// holds across pages.
func (s *PostService) Feed(ctx context.Context, limit, offset int, ascending bool) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	posts, err := s.postRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	ranked := ranking.RankPosts(posts, time.Now().UTC(), ascending)
	if offset >= len(ranked) {
		return []models.Post{}, nil
	}
	if end := offset + limit; end < len(ranked) {
		ranked = ranked[offset:end]
	} else {
		ranked = ranked[offset:]
	}
	return ranked, nil
}

// DeactivatePost retires a post. Only the producer may do this, and content
// stays immutable: deactivation is the single permitted mutation.
func (s *PostService) DeactivatePost(ctx context.Context, actorID, postID uint) error {
	if actorID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.ProducerID != actorID {
		return models.NewUnauthorizedError("Only the producer can deactivate a post")
	}
	return s.postRepo.Deactivate(ctx, postID)
}
