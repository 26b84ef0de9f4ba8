package model

import (
	"time"
)

// Client দোকানের নিয়মিত ক্লায়েন্ট (দালাল/এজেন্ট) যিনি আবেদনকারীদের
// কাগজপত্রের কাজ নিয়ে আসেন। একজন ক্লায়েন্টের অধীনে অনেক ফাইল থাকে।
type Client struct {
	ID        uint      `gorm:"primarykey" json:"id"`          // ক্লায়েন্ট আইডি
	Name      string    `gorm:"size:100;not null" json:"name"` // নাম
	ShopName  string    `gorm:"size:150" json:"shop_name"`     // দোকান/প্রতিষ্ঠানের নাম
	Phone     string    `gorm:"size:20;index" json:"phone"`    // ফোন নম্বর
	Area      string    `gorm:"size:100" json:"area"`          // এলাকা
	Notes     string    `gorm:"type:text" json:"notes"`        // নোট
	CreatedAt time.Time `json:"created_at"`                    // তৈরির সময়
	UpdatedAt time.Time `json:"updated_at"`                    // সংশোধনের সময়

	Documents []Document `gorm:"foreignKey:ClientID" json:"-"` // ক্লায়েন্টের ফাইলসমূহ
}

func (Client) TableName() string {
	return "clients"
}
