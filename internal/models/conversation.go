package models

import (
	"time"

	"gorm.io/gorm"
)

// ConversationStatus mirrors the producer's decision on the paired response.
type ConversationStatus string

const (
	// ConversationStatusPending indicates the producer has not decided yet.
	ConversationStatusPending ConversationStatus = "pending"
	// ConversationStatusActive indicates the producer accepted and messaging is open.
	ConversationStatusActive ConversationStatus = "active"
	// ConversationStatusDeclined indicates the producer declined the claim.
	ConversationStatusDeclined ConversationStatus = "declined"
)

// Conversation pairs a producer with exactly one responder per post. The
// unique index on (post_id, consumer_id) backs that invariant at commit time
// rather than trusting application logic alone. VerificationTier is copied
// from the response at creation so the producer sees the trust level the
// claim was made with.
type Conversation struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	PostID           uint               `gorm:"not null;uniqueIndex:idx_conversation_post_consumer" json:"post_id"`
	Post             Post               `gorm:"foreignKey:PostID" json:"post,omitempty"`
	ProducerID       uint               `gorm:"not null;index" json:"producer_id"`
	Producer         User               `gorm:"foreignKey:ProducerID" json:"producer,omitempty"`
	ConsumerID       uint               `gorm:"not null;uniqueIndex:idx_conversation_post_consumer" json:"consumer_id"`
	Consumer         User               `gorm:"foreignKey:ConsumerID" json:"consumer,omitempty"`
	VerificationTier VerificationTier   `gorm:"type:varchar(20);not null" json:"verification_tier"`
	ResponseID       uint               `gorm:"not null;index" json:"response_id"`
	Status           ConversationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ProducerAccepted bool               `gorm:"default:false" json:"producer_accepted"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	DeletedAt        gorm.DeletedAt     `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Conversation) TableName() string {
	return "conversations"
}
