package game

import (
	"math/bits"
	"time"

	"golang.org/x/exp/rand"
)

// A Roller produces tetrahedra rolls. Every Roller owns its own
// generator, so independent games can roll concurrently without
// sharing state.
type Roller struct {
	rng *rand.Rand
}

// NewRoller returns a Roller seeded from the clock, so successive
// process runs roll differently.
func NewRoller() *Roller {
	return NewSeededRoller(uint64(time.Now().UnixNano()))
}

// NewSeededRoller returns a Roller with a fixed seed, for
// deterministic games and tests.
func NewSeededRoller(seed uint64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Roll samples Bin(4, 0.5): four fair coins, counting heads.
func (r *Roller) Roll() Steps {
	return Steps(bits.OnesCount64(r.rng.Uint64() & 0xF))
}
