package random

import "math/rand/v2"

// Source implements port.ByteSource using the runtime-seeded global
// generator from math/rand/v2, which is safe for concurrent use.
type Source struct{}

// NewSource returns a ready to use Source.
func NewSource() *Source {
	return &Source{}
}

// Byte returns a uniformly distributed value in [0, 255].
func (s *Source) Byte() uint8 {
	return uint8(rand.UintN(256))
}
