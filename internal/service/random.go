package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/ozdilmelih/FlagGame/internal/quiz"
)

// NewSeededRand returns a math/rand source seeded from crypto/rand,
// so two games started in the same instant are still shuffled differently.
func NewSeededRand() quiz.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}

	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}
