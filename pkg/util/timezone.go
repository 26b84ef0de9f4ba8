package util

import (
	"sync"
	"time"
)

var (
	dhakaOnce sync.Once
	dhakaLoc  *time.Location
)

// Dhaka returns the Asia/Dhaka location. All civil-date arithmetic in the
// business (certificate dates, session years, recharge dates) runs in this
// zone; mixing zones shifts dates by a day around UTC midnight.
func Dhaka() *time.Location {
	dhakaOnce.Do(func() {
		loc, err := time.LoadLocation("Asia/Dhaka")
		if err != nil {
			// BST is UTC+6 year-round, no DST
			loc = time.FixedZone("BST", 6*60*60)
		}
		dhakaLoc = loc
	})
	return dhakaLoc
}

// AgeAt returns full years elapsed from dateOfBirth to reference,
// both interpreted in Asia/Dhaka.
func AgeAt(dateOfBirth, reference time.Time) int {
	dob := dateOfBirth.In(Dhaka())
	ref := reference.In(Dhaka())

	age := ref.Year() - dob.Year()
	anniversary := time.Date(ref.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, Dhaka())
	if ref.Before(anniversary) {
		age--
	}
	return age
}
