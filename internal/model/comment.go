package model

import "time"

// Comment 评论，挂在单个帖子下
type Comment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text" json:"content"`
	Author    int64     `gorm:"not null;index:idx_comment_author" json:"author"`
	PostID    int64     `gorm:"not null;index:idx_comment_post" json:"post_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

func (Comment) TableName() string { return "comments" }

// Wire 线上形态 {id, content, author, post_id, created}
func (c *Comment) Wire() map[string]any {
	return map[string]any{
		"id":      c.ID,
		"content": c.Content,
		"author":  c.Author,
		"post_id": c.PostID,
		"created": formatTime(c.CreatedAt),
	}
}
