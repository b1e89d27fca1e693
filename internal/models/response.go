package models

import (
	"time"

	"gorm.io/gorm"
)

// VerificationTier is the trust level assigned to a claim when it is made.
// It is computed once and never recomputed; a user's displayed trust level
// must not drift after the fact.
type VerificationTier string

const (
	// TierVerifiedCheckIn means a GPS-confirmed check-in overlapping the
	// post's sighting window backs the claim.
	TierVerifiedCheckIn VerificationTier = "verified_checkin"
	// TierRegularSpot means the claimant declared the post's place as one of
	// their favorite locations.
	TierRegularSpot VerificationTier = "regular_spot"
	// TierUnverifiedClaim means the claim carries no corroborating evidence.
	TierUnverifiedClaim VerificationTier = "unverified_claim"
)

// ResponseStatus represents the producer's decision on a response.
type ResponseStatus string

const (
	// ResponseStatusPending indicates the producer has not decided yet.
	ResponseStatusPending ResponseStatus = "pending"
	// ResponseStatusAccepted indicates the producer accepted the claim.
	ResponseStatusAccepted ResponseStatus = "accepted"
	// ResponseStatusRejected indicates the producer rejected the claim.
	ResponseStatusRejected ResponseStatus = "rejected"
)

// Response is a responder's claim to be the person a post describes.
// The composite unique index on (post_id, responder_id) is the invariant that
// makes concurrent duplicate claims collapse into one row.
type Response struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	PostID           uint             `gorm:"not null;uniqueIndex:idx_response_post_responder" json:"post_id"`
	Post             Post             `gorm:"foreignKey:PostID" json:"post,omitempty"`
	ResponderID      uint             `gorm:"not null;uniqueIndex:idx_response_post_responder" json:"responder_id"`
	Responder        User             `gorm:"foreignKey:ResponderID" json:"responder,omitempty"`
	VerificationTier VerificationTier `gorm:"type:varchar(20);not null" json:"verification_tier"`
	CheckInID        *uint            `json:"checkin_id,omitempty"`
	CheckIn          *CheckIn         `gorm:"foreignKey:CheckInID" json:"checkin,omitempty"`
	Message          string           `gorm:"type:text" json:"message"`
	Status           ResponseStatus   `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	RespondedAt      *time.Time       `json:"responded_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Response) TableName() string {
	return "responses"
}
