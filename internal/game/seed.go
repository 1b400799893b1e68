package game

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
)

// DeriveSeed produces a stable sub-seed for a labeled randomness consumer,
// so a single run seed can drive layout generation, drone motion, and
// narration from independent streams.
func DeriveSeed(root int64, label string) int64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(root))
	h.Write(buf[:])
	h.Write([]byte{0})
	h.Write([]byte(label))
	sum := h.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// NewRand returns a rand.Rand seeded for the labeled consumer.
func NewRand(root int64, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(root, label)))
}
