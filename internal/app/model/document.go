package model

import (
	"time"
)

type PrintStatus string  // প্রতিটি ডকুমেন্টের প্রিন্ট অবস্থা
type DocumentKind string // বাল্ক অপারেশনের টার্গেট ডকুমেন্ট ধরন

const (
	PrintStatusNotPrinted PrintStatus = "not_printed" // এখনো প্রিন্ট হয়নি
	PrintStatusPrinted    PrintStatus = "printed"     // প্রিন্ট হয়েছে

	KindCertificate DocumentKind = "certificate" // প্রশংসাপত্র/সার্টিফিকেট
	KindBill        DocumentKind = "bill"        // বিদ্যুৎ বিল
)

// Valid reports whether k names a known document kind.
func (k DocumentKind) Valid() bool {
	return k == KindCertificate || k == KindBill
}

// Toggle returns the opposite print status.
func (s PrintStatus) Toggle() PrintStatus {
	if s == PrintStatusPrinted {
		return PrintStatusNotPrinted
	}
	return PrintStatusPrinted
}

// Document ব্যবসার ভাষায় "ফাইল": এক আবেদনকারীর কেস। ফাইলে ঐচ্ছিকভাবে
// একটি সার্টিফিকেট এবং/অথবা একটি বিদ্যুৎ বিল যুক্ত থাকে। ফাইল কখনো
// soft-delete হয় না; মুছলে সংযুক্ত ডকুমেন্টসহ সম্পূর্ণ মুছে যায়।
type Document struct {
	ID           uint       `gorm:"primarykey" json:"id"`                        // ফাইল আইডি
	FileNo       string     `gorm:"size:40;not null;uniqueIndex" json:"file_no"` // ফাইল নম্বর
	ClientID     *uint      `gorm:"index" json:"client_id,omitempty"`            // ক্লায়েন্ট আইডি
	NameBn       string     `gorm:"size:150" json:"name_bn"`                     // আবেদনকারীর বাংলা নাম
	NameEn       string     `gorm:"size:150" json:"name_en"`                     // আবেদনকারীর ইংরেজি নাম
	FatherName   string     `gorm:"size:150" json:"father_name"`                 // পিতার নাম
	MotherName   string     `gorm:"size:150" json:"mother_name"`                 // মাতার নাম
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`                     // পূর্ণ জন্মতারিখ (থাকলে)
	BirthYear    int        `json:"birth_year"`                                  // শুধু জন্মসাল জানা থাকলে
	PhotoKey     string     `gorm:"size:255" json:"photo_key"`                   // আবেদনকারীর ছবির S3 কী
	SourcePDFKey string     `gorm:"size:255" json:"source_pdf_key"`              // উৎস পিডিএফের S3 কী

	HasCertificate     bool `gorm:"default:false;index" json:"has_certificate"`      // সার্টিফিকেট আছে কিনা
	HasElectricityBill bool `gorm:"default:false;index" json:"has_electricity_bill"` // বিদ্যুৎ বিল আছে কিনা

	CreatedAt time.Time `json:"created_at"` // তৈরির সময়
	UpdatedAt time.Time `json:"updated_at"` // সংশোধনের সময়

	Client          *Client          `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"client,omitempty"` // ক্লায়েন্ট তথ্য
	Certificate     *Certificate     `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"certificate,omitempty"`            // সার্টিফিকেট
	ElectricityBill *ElectricityBill `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"electricity_bill,omitempty"`       // বিদ্যুৎ বিল
}

func (Document) TableName() string {
	return "documents"
}

// Has reports whether the document carries the given attachment kind.
func (d *Document) Has(kind DocumentKind) bool {
	switch kind {
	case KindCertificate:
		return d.HasCertificate && d.Certificate != nil
	case KindBill:
		return d.HasElectricityBill && d.ElectricityBill != nil
	}
	return false
}
