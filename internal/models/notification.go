package models

import "time"

// NotificationType distinguishes match alert variants.
type NotificationType string

const (
	// NotificationTypeTierOneMatch is the "someone near you posted" alert sent
	// to users with a verified check-in overlapping a new post's sighting window.
	NotificationTypeTierOneMatch NotificationType = "tier1_match"
)

// MatchNotification records that a match alert was selected for a user.
// Write-once per (post, user): the composite unique index makes re-running the
// matcher a no-op rather than a double alert. ReadAt and ClickedAt are the only
// fields mutated after creation.
type MatchNotification struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	PostID           uint             `gorm:"not null;uniqueIndex:idx_match_notification_post_user" json:"post_id"`
	Post             Post             `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID           uint             `gorm:"not null;uniqueIndex:idx_match_notification_post_user" json:"user_id"`
	CheckInID        *uint            `json:"checkin_id,omitempty"`
	NotificationType NotificationType `gorm:"type:varchar(30);not null;default:'tier1_match'" json:"notification_type"`
	SentAt           time.Time        `gorm:"not null" json:"sent_at"`
	ReadAt           *time.Time       `json:"read_at,omitempty"`
	ClickedAt        *time.Time       `json:"clicked_at,omitempty"`
}

// TableName specifies the table name for GORM
func (MatchNotification) TableName() string {
	return "match_notifications"
}

// NotificationPreference stores a user's opt-outs. A missing row means every
// alert type is enabled; the matcher treats absence as consent.
type NotificationPreference struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	MatchAlerts bool      `gorm:"default:true" json:"match_alerts"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (NotificationPreference) TableName() string {
	return "notification_preferences"
}

// PushToken is a deliverable push address for a user's device. Delivery itself
// belongs to the external dispatcher; the matcher only requires that at least
// one valid address exists before selecting a user.
type PushToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_push_token_user_token" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex:idx_push_token_user_token" json:"token"`
	Platform  string    `gorm:"type:varchar(20)" json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (PushToken) TableName() string {
	return "push_tokens"
}
