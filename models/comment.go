package models

import "time"

// Comment is a reader comment on an article, keyed by a generated ID and
// bound to the writer's engagement session. Comments are created only through
// the moderation gate and never updated.
type Comment struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	ArticleID  uint      `gorm:"index:idx_comments_article_session;not null" json:"article_id"`
	SessionID  string    `gorm:"index:idx_comments_article_session;size:64;not null" json:"session_id"`
	AuthorName string    `gorm:"size:64;not null" json:"author_name"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
