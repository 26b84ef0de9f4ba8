package model

import (
	"time"
)

type BillTemplate string // প্রিপেইড বিলের দুইটি ছাপার ছাঁচ

const (
	TemplateA BillTemplate = "A" // পুরনো ছাঁচ
	TemplateB BillTemplate = "B" // নতুন ছাঁচ (রিচার্জ মাধ্যমসহ)
)

// Valid reports whether t names a known bill template.
func (t BillTemplate) Valid() bool {
	return t == TemplateA || t == TemplateB
}

// ElectricityBill ফাইলের সাথে যুক্ত প্রিপেইড বিদ্যুৎ বিল ডকুমেন্ট।
// রিচার্জ হিস্ট্রি সম্পূর্ণ সিন্থেটিক; নতুন থেকে পুরনো ক্রমে সাজানো থাকে।
type ElectricityBill struct {
	ID           uint         `gorm:"primarykey" json:"id"`                                       // বিল আইডি
	DocumentID   uint         `gorm:"not null;uniqueIndex" json:"document_id"`                    // ফাইল আইডি (এক ফাইলে একটিই)
	HolderName   string       `gorm:"size:150;not null" json:"holder_name"`                       // গ্রাহকের নাম
	AccountNo    string       `gorm:"size:40" json:"account_no"`                                  // হিসাব নম্বর
	MeterNo      string       `gorm:"size:40" json:"meter_no"`                                    // মিটার নম্বর
	CustomerNo   string       `gorm:"size:40" json:"customer_no"`                                 // গ্রাহক নম্বর
	Address      string       `gorm:"type:text" json:"address"`                                   // সংযোগের ঠিকানা
	TemplateKind BillTemplate `gorm:"type:varchar(2);default:'A'" json:"template_kind"`           // ছাঁচ
	PrintStatus  PrintStatus  `gorm:"type:varchar(20);default:'not_printed'" json:"print_status"` // প্রিন্ট অবস্থা
	CreatedAt    time.Time    `json:"created_at"`                                                 // তৈরির সময়
	UpdatedAt    time.Time    `json:"updated_at"`                                                 // সংশোধনের সময়

	Recharges []RechargeEntry `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"recharges,omitempty"` // রিচার্জ হিস্ট্রি (নতুন আগে)
}

func (ElectricityBill) TableName() string {
	return "electricity_bills"
}

// RechargeEntry সিন্থেটিক রিচার্জ লেজারের এক সারি
type RechargeEntry struct {
	ID            uint      `gorm:"primarykey" json:"id"`                 // এন্ট্রি আইডি
	BillID        uint      `gorm:"not null;index" json:"bill_id"`        // বিল আইডি
	Date          time.Time `gorm:"not null" json:"date"`                 // রিচার্জের তারিখ
	TotalAmount   float64   `gorm:"not null" json:"total_amount"`         // মোট টাকা (৫০-এর গুণিতক)
	EnergyAmount  float64   `gorm:"not null" json:"energy_amount"`        // এনার্জি বাবদ
	VAT           float64   `gorm:"not null" json:"vat"`                  // ভ্যাট (এনার্জির ৫%)
	Rebate        float64   `gorm:"not null" json:"rebate"`               // রিবেট (ঋণাত্মক)
	DemandCharge  float64   `json:"demand_charge"`                        // ডিমান্ড চার্জ
	MeterRent     float64   `json:"meter_rent"`                           // মিটার ভাড়া
	ServiceCharge float64   `json:"service_charge,omitempty"`             // সার্ভিস চার্জ (ছাঁচ A)
	ArrearAmount  float64   `json:"arrear_amount,omitempty"`              // বকেয়া (ছাঁচ B)
	OtherCharge   float64   `json:"other_charge,omitempty"`               // অন্যান্য চার্জ (ছাঁচ B)
	RechargeBy    string    `gorm:"size:20" json:"recharge_by,omitempty"` // রিচার্জ মাধ্যম (ছাঁচ B)
	CreatedAt     time.Time `json:"created_at"`                           // তৈরির সময়
}

func (RechargeEntry) TableName() string {
	return "recharge_entries"
}
