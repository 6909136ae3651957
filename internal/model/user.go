package model

import "time"

// User 用户；password/salt 为散列材料，永不进入任何线上形态
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex:ux_user_name;not null" json:"username"`
	Password  string    `gorm:"type:varchar(128);not null" json:"-"`
	Salt      string    `gorm:"type:varchar(64);not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

func (User) TableName() string { return "users" }

// Wire 线上形态 {id, username, created}
func (u *User) Wire() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"username": u.Username,
		"created":  formatTime(u.CreatedAt),
	}
}
