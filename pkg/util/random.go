package util

import (
	"math/rand"
)

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// RandomMultiple returns a random multiple of step between min and max
// (inclusive). min and max must themselves be multiples of step.
func RandomMultiple(step, min, max int) int {
	return step * RandomInt(min/step, max/step)
}
