package model

import (
	"time"
)

type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                    // রিসেট রেকর্ড আইডি
	Email     string    `gorm:"size:255;not null;index" json:"email"`    // ইমেইল
	Token     string    `gorm:"size:255;not null;unique;index" json:"-"` // রিসেট টোকেন (প্রকাশ নয়)
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`              // মেয়াদ শেষ
	Used      bool      `gorm:"default:false" json:"used"`               // ব্যবহৃত কিনা
	CreatedAt time.Time `json:"created_at"`                              // তৈরির সময়
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
