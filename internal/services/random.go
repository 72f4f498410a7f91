package services

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of randomness for the games
type Rand interface {
	IntN(n int) int
}

// NewRand returns a time-seeded PCG source
func NewRand() Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
