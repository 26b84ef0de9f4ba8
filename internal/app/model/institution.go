package model

import (
	"time"
)

// Institution যে শিক্ষা প্রতিষ্ঠানের নামে সার্টিফিকেট ছাপা হয়
type Institution struct {
	ID              uint      `gorm:"primarykey" json:"id"`                   // প্রতিষ্ঠান আইডি
	NameBn          string    `gorm:"size:200;not null" json:"name_bn"`       // বাংলা নাম
	NameEn          string    `gorm:"size:200" json:"name_en"`                // ইংরেজি নাম
	EIIN            string    `gorm:"size:20;uniqueIndex" json:"eiin"`        // EIIN নম্বর
	Address         string    `gorm:"type:text" json:"address"`               // ঠিকানা
	HeadTeacherName string    `gorm:"size:100" json:"head_teacher_name"`      // প্রধান শিক্ষকের নাম
	EstablishedYear int       `json:"established_year"`                       // প্রতিষ্ঠার সাল
	CreatedAt       time.Time `json:"created_at"`                             // তৈরির সময়
	UpdatedAt       time.Time `json:"updated_at"`                             // সংশোধনের সময়

	Certificates []Certificate `gorm:"foreignKey:InstitutionID" json:"-"` // প্রতিষ্ঠানের সার্টিফিকেটসমূহ
}

func (Institution) TableName() string {
	return "institutions"
}
