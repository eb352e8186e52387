// Package random provides the process-level seed for the game's shuffles.
//
// Seeds come from crypto/rand so every run gets an unpredictable shoe, while
// still allowing a fixed seed to be injected for reproducible games.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
