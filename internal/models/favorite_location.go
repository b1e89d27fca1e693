package models

import "time"

// FavoriteLocation marks a place as one of the user's regular spots.
// PlaceID holds the external registry identity, matching Place.ExternalPlaceID,
// so a favorite survives re-import of the internal place row.
type FavoriteLocation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_favorite_user_place" json:"user_id"`
	PlaceID    string    `gorm:"not null;uniqueIndex:idx_favorite_user_place" json:"place_id"`
	CustomName string    `json:"custom_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (FavoriteLocation) TableName() string {
	return "favorite_locations"
}
