package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToBanglaDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"All digits", "0123456789", "০১২৩৪৫৬৭৮৯"},
		{"Mixed text", "Roll: 42", "Roll: ৪২"},
		{"No digits", "শ্রেণি", "শ্রেণি"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBanglaDigits(tt.input))
		})
	}
}

func TestFormatBanglaDate(t *testing.T) {
	d := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "৩১ মে ২০২৪", FormatBanglaDate(d))

	d = time.Date(2023, time.December, 21, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "২১ ডিসেম্বর ২০২৩", FormatBanglaDate(d))
}

func TestContainsBangla(t *testing.T) {
	assert.True(t, ContainsBangla("মোঃ রফিকুল ইসলাম"))
	assert.True(t, ContainsBangla("Name: করিম"))
	assert.False(t, ContainsBangla("Md. Rafiqul Islam"))
	assert.False(t, ContainsBangla(""))
}
