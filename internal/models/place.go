package models

import "time"

// Place is a physical location posts and check-ins are anchored to.
// ExternalPlaceID carries the upstream place registry's identity (e.g. a
// Google place id); favorite lookups match on it rather than the row id, so a
// re-imported place keeps its regulars.
type Place struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	ExternalPlaceID string    `gorm:"uniqueIndex;not null" json:"external_place_id"`
	Address         string    `json:"address"`
	Latitude        float64   `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude       float64   `gorm:"type:decimal(11,8)" json:"longitude"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Place) TableName() string {
	return "places"
}
