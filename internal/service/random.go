package service

import (
	"math/rand/v2"
)

// RandSource is the random source for every generator. It is deliberately
// not cryptographically secure; generated secrets are for mock-ups only.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewRand returns a RandSource backed by the math/rand/v2 global generator,
// which is safe for concurrent use.
func NewRand() RandSource {
	return globalRand{}
}

func pick[T any](r RandSource, items []T) T {
	return items[r.IntN(len(items))]
}

// between returns a value in [lo, hi).
func between(r RandSource, lo, hi int) int {
	return lo + r.IntN(hi-lo)
}
