package models

import "time"

// Block hides two users from each other. Visibility is symmetric: a block in
// either direction removes the pair from tiering and notification, even though
// only one side created the row.
type Block struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlockerID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocker_id"`
	Blocker   User      `gorm:"foreignKey:BlockerID" json:"blocker,omitempty"`
	BlockedID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocked_id"`
	Blocked   User      `gorm:"foreignKey:BlockedID" json:"blocked,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Block) TableName() string {
	return "blocks"
}
