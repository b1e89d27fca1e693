package models

import (
	"time"

	"gorm.io/gorm"
)

// SightingWindowRadius is how far on either side of a post's sighting time a
// presence interval may fall and still count as "being there".
const SightingWindowRadius = 2 * time.Hour

// Post is a producer's description of a person seen at a place. Content is
// immutable after creation; deactivation is the only allowed mutation.
type Post struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Note              string     `gorm:"type:text;not null" json:"note"`
	TargetDescription string     `gorm:"type:text;not null" json:"target_description"`
	ProducerID        uint       `gorm:"not null;index" json:"producer_id"`
	Producer          User       `gorm:"foreignKey:ProducerID" json:"producer,omitempty"`
	LocationID        uint       `gorm:"not null;index" json:"location_id"`
	Location          Place      `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	// SightingDate is when the sighting actually occurred, which may predate
	// publication. Nil means the post was published right after the sighting.
	SightingDate *time.Time     `json:"sighting_date,omitempty"`
	ExpiresAt    *time.Time     `json:"expires_at,omitempty"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Post) TableName() string {
	return "posts"
}

// SightingTime returns the moment the sighting is anchored to: the declared
// sighting date when present, otherwise the publish time.
func (p *Post) SightingTime() time.Time {
	if p.SightingDate != nil {
		return *p.SightingDate
	}
	return p.CreatedAt
}

// SightingWindow returns the interval a claimant's presence must overlap.
func (p *Post) SightingWindow() (start, end time.Time) {
	t := p.SightingTime()
	return t.Add(-SightingWindowRadius), t.Add(SightingWindowRadius)
}
