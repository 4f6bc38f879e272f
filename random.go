package tesseract

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a deterministic random source for Scramble. A zero seed
// picks a time based seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
