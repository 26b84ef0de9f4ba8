package model

import (
	"time"
)

// Certificate ফাইলের সাথে যুক্ত প্রশংসাপত্রের একাডেমিক তথ্য।
// className/roll/sessionYear/certificateDate তৈরির সময় একবার হিসাব হয়;
// মেইনটেন্যান্স অপারেশনে বর্তমান নিয়ম দিয়ে আবার হিসাব করা যায়।
type Certificate struct {
	ID              uint        `gorm:"primarykey" json:"id"`                                       // সার্টিফিকেট আইডি
	DocumentID      uint        `gorm:"not null;uniqueIndex" json:"document_id"`                    // ফাইল আইডি (এক ফাইলে একটিই)
	InstitutionID   uint        `gorm:"not null;index" json:"institution_id"`                       // প্রতিষ্ঠান আইডি
	ClassName       string      `gorm:"size:20;not null" json:"class_name"`                         // শ্রেণি (Class 1–9)
	Roll            int         `gorm:"not null" json:"roll"`                                       // রোল (১১–৯৯)
	SessionYear     int         `gorm:"not null" json:"session_year"`                               // শিক্ষাবর্ষ
	CertificateDate time.Time   `gorm:"not null" json:"certificate_date"`                           // সার্টিফিকেটের তারিখ
	PrintStatus     PrintStatus `gorm:"type:varchar(20);default:'not_printed'" json:"print_status"` // প্রিন্ট অবস্থা
	CreatedAt       time.Time   `json:"created_at"`                                                 // তৈরির সময়
	UpdatedAt       time.Time   `json:"updated_at"`                                                 // সংশোধনের সময়

	Institution Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"` // প্রতিষ্ঠান তথ্য
	Document    *Document   `gorm:"foreignKey:DocumentID" json:"-"`                        // মালিক ফাইল (রিকম্পিউটে ব্যবহৃত)
}

func (Certificate) TableName() string {
	return "certificates"
}
