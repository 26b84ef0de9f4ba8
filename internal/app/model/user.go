package model

import (
	"time"
)

type UserRole string // অপারেটর অ্যাকাউন্টের রোল

const (
	RoleAdmin    UserRole = "admin"    // দোকানের মালিক/অ্যাডমিন
	RoleOperator UserRole = "operator" // সাধারণ অপারেটর
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                              // ব্যবহারকারী আইডি
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`        // লগইন ইমেইল
	PasswordHash string    `gorm:"size:255;not null" json:"-"`                        // bcrypt হ্যাশ (নোটে প্রকাশ নয়)
	Name         string    `gorm:"size:100;not null" json:"name"`                     // নাম
	Phone        string    `gorm:"size:20" json:"phone"`                              // ফোন নম্বর
	Role         UserRole  `gorm:"type:varchar(20);default:'operator'" json:"role"`   // রোল
	CreatedAt    time.Time `json:"created_at"`                                        // তৈরির সময়
	UpdatedAt    time.Time `json:"updated_at"`                                        // সংশোধনের সময়
}

func (User) TableName() string {
	return "users"
}
