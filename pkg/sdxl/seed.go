package sdxl

import "github.com/google/uuid"

// SeedMax bounds the default seed range (2^32 - 1).
const SeedMax = 4294967295

// SeedSource provides a stable machine-derived seed. It exists so tests
// can substitute a fixed value.
type SeedSource interface {
	StableSeed() int64
}

// NodeSeed derives a seed from this machine's hardware address, so the
// same machine produces the same default seed across runs.
type NodeSeed struct{}

// StableSeed reduces the 48-bit node identifier modulo SeedMax.
func (NodeSeed) StableSeed() int64 {
	var v uint64
	for _, b := range uuid.NodeID() {
		v = v<<8 | uint64(b)
	}
	return int64(v % SeedMax)
}

// FixedSeed is a SeedSource that always returns the same value.
type FixedSeed int64

// StableSeed returns the fixed value.
func (s FixedSeed) StableSeed() int64 {
	return int64(s)
}
