// Package service contains the business logic for claims, matching, and posts.
package service

import (
	"context"
	"errors"
	"time"

	"spotted/internal/models"
	"spotted/internal/observability"
	"spotted/internal/repository"
)

// ClaimResult is what both callers of a concurrent duplicate claim receive:
// the identifiers of the single Response/Conversation pair that won.
type ClaimResult struct {
	ResponseID     uint                    `json:"response_id"`
	ConversationID uint                    `json:"conversation_id"`
	Tier           models.VerificationTier `json:"verification_tier"`
	// AlreadyExisted is true when this claim resolved to rows created by an
	// earlier (or concurrent) identical claim.
	AlreadyExisted bool `json:"already_existed"`
}

// ResponseService resolves a claim's verification tier and binds it to a
// conversation in one transaction.
type ResponseService struct {
	postRepo         repository.PostRepository
	responseRepo     repository.ResponseRepository
	conversationRepo repository.ConversationRepository
	checkInRepo      repository.CheckInRepository
	favoriteRepo     repository.FavoriteRepository
	blockRepo        repository.BlockRepository
}

// NewResponseService returns a new ResponseService.
func NewResponseService(
	postRepo repository.PostRepository,
	responseRepo repository.ResponseRepository,
	conversationRepo repository.ConversationRepository,
	checkInRepo repository.CheckInRepository,
	favoriteRepo repository.FavoriteRepository,
	blockRepo repository.BlockRepository,
) *ResponseService {
	return &ResponseService{
		postRepo:         postRepo,
		responseRepo:     responseRepo,
		conversationRepo: conversationRepo,
		checkInRepo:      checkInRepo,
		favoriteRepo:     favoriteRepo,
		blockRepo:        blockRepo,
	}
}

// rejectClaim counts a claim rejection under reason and passes the error on.
func rejectClaim(reason string, err *models.AppError) error {
	observability.ClaimsRejected.WithLabelValues(reason).Inc()
	return err
}

// SubmitResponse validates a claim against the post, computes its verification
// tier, and atomically creates the response and its paired conversation.
// Preconditions run in a fixed order and have no side effects on failure. A
// duplicate claim, pre-existing or racing, resolves to the existing pair's
// identifiers rather than an error.
func (s *ResponseService) SubmitResponse(ctx context.Context, actorID, postID uint, checkInID *uint, message string) (*ClaimResult, error) {
	if actorID == 0 {
		return nil, rejectClaim("unauthenticated", models.NewUnauthorizedError("Authentication required"))
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.ProducerID == actorID {
		return nil, rejectClaim("self_response", models.NewUnauthorizedError("You cannot respond to your own post"))
	}

	if existing, err := s.existingClaim(ctx, postID, actorID); err != nil || existing != nil {
		return existing, err
	}

	blocked, err := s.blockRepo.ExistsBetween(ctx, actorID, post.ProducerID)
	if err != nil {
		return nil, err
	}
	if blocked {
		// Same shape as other authorization failures so the caller cannot
		// probe for block relationships.
		return nil, rejectClaim("blocked", models.NewUnauthorizedError("You cannot respond to this post"))
	}

	tier, err := s.resolveTier(ctx, actorID, post, checkInID)
	if err != nil {
		return nil, err
	}

	response := &models.Response{
		PostID:           postID,
		ResponderID:      actorID,
		VerificationTier: tier,
		CheckInID:        checkInID,
		Message:          message,
		Status:           models.ResponseStatusPending,
	}
	conversation := &models.Conversation{
		PostID:           postID,
		ProducerID:       post.ProducerID,
		ConsumerID:       actorID,
		VerificationTier: tier,
		Status:           models.ConversationStatusPending,
	}

	if err := s.responseRepo.CreateWithConversation(ctx, response, conversation); err != nil {
		if errors.Is(err, repository.ErrDuplicatePair) {
			// A concurrent identical claim won the race. Both callers must
			// see the same identifiers, so fetch the winner's rows.
			existing, exErr := s.existingClaim(ctx, postID, actorID)
			if exErr != nil {
				return nil, exErr
			}
			if existing != nil {
				return existing, nil
			}
			return nil, models.NewInternalError(err)
		}
		return nil, err
	}

	observability.ClaimsSubmitted.WithLabelValues(string(tier)).Inc()

	return &ClaimResult{
		ResponseID:     response.ID,
		ConversationID: conversation.ID,
		Tier:           tier,
	}, nil
}

// existingClaim returns the claim result for an already-bound (post, actor)
// pair, or nil when no response exists yet.
func (s *ResponseService) existingClaim(ctx context.Context, postID, actorID uint) (*ClaimResult, error) {
	response, err := s.responseRepo.GetByPostAndResponder(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, nil
	}

	conversation, err := s.conversationRepo.GetByPostAndConsumer(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}
	result := &ClaimResult{
		ResponseID:     response.ID,
		Tier:           response.VerificationTier,
		AlreadyExisted: true,
	}
	if conversation != nil {
		result.ConversationID = conversation.ID
	}
	return result, nil
}

// UpdateResponseStatus applies the producer's accept/reject decision and
// mirrors it into the paired conversation. Only the post's producer may call
// this, and only while the response is pending.
func (s *ResponseService) UpdateResponseStatus(ctx context.Context, actorID, responseID uint, status models.ResponseStatus) error {
	if actorID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	if status != models.ResponseStatusAccepted && status != models.ResponseStatusRejected {
		return models.NewValidationError("Status must be accepted or rejected")
	}

	response, err := s.responseRepo.GetByID(ctx, responseID)
	if err != nil {
		return err
	}
	if response.Post.ProducerID != actorID {
		return models.NewUnauthorizedError("Only the post producer can decide on responses")
	}
	if response.Status != models.ResponseStatusPending {
		return models.NewValidationError("Response has already been decided")
	}

	return s.responseRepo.UpdateStatus(ctx, responseID, status, time.Now().UTC())
}
