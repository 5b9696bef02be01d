package chip8

import (
	"math/rand"
	"time"
)

// RandomSource provides the bytes for the random instruction CXNN.
type RandomSource interface {
	RandomByte() byte
}

// NewRandomSource returns a pseudo random source for the given seed.
// A seed of 0 uses the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRandom{
		rnd: rand.New(rand.NewSource(seed)), //nolint:gosec // no cryptographic use
	}
}

type mathRandom struct {
	rnd *rand.Rand
}

func (m *mathRandom) RandomByte() byte {
	return byte(m.rnd.Intn(256))
}
