// Package rng provides the deterministic pseudo-random source used across
// the Monte Carlo engine.
package rng

import "math/bits"

// Source is a 256-bit scrambled linear generator (xoshiro256+ family). It is
// not safe for concurrent use; callers that fan simulation work out across
// goroutines should give each worker its own Source.
type Source struct {
	s [4]uint64
}

// New seeds a Source deterministically from a single uint64 using a
// SplitMix64 expansion, so the same seed always produces the same stream.
func New(seed uint64) *Source {
	src := &Source{}
	z := seed
	for i := range src.s {
		z += 0x9e3779b97f4a7c15
		x := z
		x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
		x = (x ^ (x >> 27)) * 0x94d049bb133111eb
		x = x ^ (x >> 31)
		src.s[i] = x
	}
	return src
}

func rotl(x uint64, k int) uint64 {
	return bits.RotateLeft64(x, k)
}

// Uint64 returns the next 64-bit word and advances the generator state.
func (s *Source) Uint64() uint64 {
	result := rotl(s.s[0]+s.s[3], 23) + s.s[0]

	t := s.s[1] << 17
	s.s[2] ^= s.s[0]
	s.s[3] ^= s.s[1]
	s.s[1] ^= s.s[2]
	s.s[0] ^= s.s[3]
	s.s[2] ^= t
	s.s[3] = rotl(s.s[3], 45)

	return result
}

// Float64 returns a uniform double in [0, 1) using the top 53 bits of the
// next word.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) * (1.0 / (1 << 53))
}
