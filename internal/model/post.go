package model

import "time"

// Post 内容主体
type Post struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Author    int64     `gorm:"not null;index:idx_post_author" json:"author"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

func (Post) TableName() string { return "posts" }

// Wire 完整线上形态 {id, title, content, author, created}
func (p *Post) Wire() map[string]any {
	return map[string]any{
		"id":      p.ID,
		"title":   p.Title,
		"content": p.Content,
		"author":  p.Author,
		"created": formatTime(p.CreatedAt),
	}
}

// Summary 列表用精简形态，省去 content
func (p *Post) Summary() map[string]any {
	return map[string]any{
		"id":      p.ID,
		"title":   p.Title,
		"author":  p.Author,
		"created": formatTime(p.CreatedAt),
	}
}
