package models

import "time"

// Article is a published blog article. Articles are addressed externally by a
// human-chosen slug and internally by a numeric ID that sessions and comments
// join against. Title/description/content are stored per locale as parallel
// columns (English and Turkish).
type Article struct {
	Slug          string    `gorm:"column:id;primaryKey;size:128" json:"id"`
	InternalID    uint      `gorm:"column:id_a;autoIncrement;uniqueIndex" json:"id_a"`
	PublishedAt   time.Time `gorm:"index;not null" json:"published_at"`
	Topic         string    `gorm:"size:64;index;not null" json:"topic"`
	TitleEN       string    `gorm:"size:255;not null" json:"-"`
	TitleTR       string    `gorm:"size:255;not null" json:"-"`
	DescriptionEN string    `gorm:"size:512" json:"-"`
	DescriptionTR string    `gorm:"size:512" json:"-"`
	ContentEN     string    `gorm:"type:mediumtext" json:"-"`
	ContentTR     string    `gorm:"type:mediumtext" json:"-"`
	LikeCount     int64     `gorm:"not null;default:0" json:"like_count"`
	ViewCount     int64     `gorm:"not null;default:0" json:"view_count"`
	BannerURL     string    `gorm:"size:512" json:"banner_url"`
	ReadingTime   int       `gorm:"not null;default:0" json:"reading_time"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName keeps the table singularly named to match the existing schema.
func (Article) TableName() string {
	return "articles"
}
