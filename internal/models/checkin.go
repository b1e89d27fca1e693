package models

import "time"

// DefaultPresenceDuration caps how long an open check-in counts as presence
// when the user never checked out.
const DefaultPresenceDuration = 4 * time.Hour

// CheckIn is a durable record of a user's physical presence at a place.
// Rows are written by the presence tracker; this service only reads them.
// Verified is true only when the tracker confirmed the user's GPS position
// within its dynamic accuracy radius.
type CheckIn struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index:idx_checkins_user" json:"user_id"`
	User           User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	LocationID     uint       `gorm:"not null;index:idx_checkins_location" json:"location_id"`
	Location       Place      `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	CheckedInAt    time.Time  `gorm:"not null" json:"checked_in_at"`
	CheckedOutAt   *time.Time `json:"checked_out_at,omitempty"`
	Verified       bool       `gorm:"default:false;index" json:"verified"`
	AccuracyMeters *float64   `json:"accuracy_meters,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// TableName specifies the table name for GORM
func (CheckIn) TableName() string {
	return "check_ins"
}

// PresenceEnd returns when this check-in's presence interval closes: the
// check-out time if recorded, otherwise four hours after arrival.
func (c *CheckIn) PresenceEnd() time.Time {
	if c.CheckedOutAt != nil {
		return *c.CheckedOutAt
	}
	return c.CheckedInAt.Add(DefaultPresenceDuration)
}

// OverlapsWindow reports whether this check-in's presence interval intersects
// the interval [start, end].
func (c *CheckIn) OverlapsWindow(start, end time.Time) bool {
	return !c.CheckedInAt.After(end) && !c.PresenceEnd().Before(start)
}
