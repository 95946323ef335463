package sample

import "math/rand/v2"

// Source yields pseudo-random draws in [0, 1).
type Source interface {
	Float64() float64
}

// LCG is a 32-bit linear congruential generator. The constants are fixed:
// downstream consumers replay the exact same draw sequence from a stored
// seed, so the generator must produce bit-identical output everywhere it is
// reimplemented.
type LCG struct {
	state uint32
}

// NewLCG returns a generator whose sequence is fully determined by seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Float64 advances the generator and returns the next draw in [0, 1).
func (l *LCG) Float64() float64 {
	l.state = l.state*1664525 + 1013904223
	return float64(l.state) / (1 << 32)
}

// Seed rewinds the generator to the position implied by seed alone.
func (l *LCG) Seed(seed uint32) {
	l.state = seed
}

// ambient adapts math/rand/v2 to the Source interface.
type ambient struct{}

func (ambient) Float64() float64 {
	return rand.Float64()
}

// Ambient returns a non-deterministic source backed by math/rand/v2.
func Ambient() Source {
	return ambient{}
}

// FromSeed returns a deterministic source when seed is non-nil, otherwise
// the ambient source.
func FromSeed(seed *uint32) Source {
	if seed != nil {
		return NewLCG(*seed)
	}
	return Ambient()
}
