package models

import "time"

// EngagementSession identifies a browser across requests. The token is the
// sole basis for engagement deduplication; there are no user accounts.
// LikedPosts holds the internal IDs of articles this session has liked,
// serialized into a single JSON column.
type EngagementSession struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	LikedPosts []uint    `gorm:"serializer:json;type:json" json:"liked_posts"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (EngagementSession) TableName() string {
	return "sessions"
}
