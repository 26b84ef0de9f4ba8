package util

import (
	"strings"
	"time"
)

var banglaDigits = map[rune]rune{
	'0': '০', '1': '১', '2': '২', '3': '৩', '4': '৪',
	'5': '৫', '6': '৬', '7': '৭', '8': '৮', '9': '৯',
}

var banglaMonths = [...]string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

// ToBanglaDigits converts every western digit in s to its Bengali form.
// Non-digit runes pass through unchanged.
func ToBanglaDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if bn, ok := banglaDigits[r]; ok {
			b.WriteRune(bn)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var latinDigits = map[rune]rune{
	'০': '0', '১': '1', '২': '2', '৩': '3', '৪': '4',
	'৫': '5', '৬': '6', '৭': '7', '৮': '8', '৯': '9',
}

// ToLatinDigits converts every Bengali digit in s to its western form,
// for parsing dates out of Bengali-script documents.
func ToLatinDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if en, ok := latinDigits[r]; ok {
			b.WriteRune(en)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatBanglaDate renders a date as "০১ জানুয়ারি ২০২৪" for the
// Bengali face of printed documents.
func FormatBanglaDate(t time.Time) string {
	day := ToBanglaDigits(t.Format("02"))
	year := ToBanglaDigits(t.Format("2006"))
	return day + " " + banglaMonths[t.Month()-1] + " " + year
}

// ContainsBangla reports whether s has at least one Bengali-script rune.
// Used to decide which name field an extracted value belongs to.
func ContainsBangla(s string) bool {
	for _, r := range s {
		if r >= 0x0980 && r <= 0x09FF {
			return true
		}
	}
	return false
}
