package models

import (
	"time"
)

// User 用户账户
type User struct {
	ID           string     `gorm:"primaryKey;type:varchar(26)" json:"id"`
	Email        string     `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(100);not null" json:"-"`
	Nickname     string     `gorm:"type:varchar(50)" json:"nickname"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP  string     `gorm:"type:varchar(50)" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
