package game

import (
	"fmt"
	"math/bits"
)

// Steps is the result of one roll of the tetrahedra, in [0..4].
type Steps uint8

// MaxSteps is the highest possible roll.
const MaxSteps Steps = 4

// Position is a location along one player's tile path, in [0..15].
// Position 0 is the starting pile and position 15 is the ending pile.
// Positions 5 through 12 are shared between the players; the other
// positions are private to each side even though the numbers coincide.
type Position uint8

// Options is a set of positions packed into a 16-bit mask. Bit i is
// set iff position i is a member. Bit 15 is never set: it is invalid
// to move a tile out of the ending pile.
type Options uint16

// Tiles is the number of starting tiles per player.
const Tiles = 7

// Rosette squares grant another roll when landed on. The central
// rosette is also safe: a tile cannot land there while the opponent
// holds it, so it can never be captured.
const (
	FirstRosette   Position = 4
	CentralRosette Position = 8
	LastRosette    Position = 14
)

// sharedLane masks positions 5 through 12, the stretch of the path
// both players travel. Captures happen here and nowhere else.
const sharedLane Options = 0x1FE0

// Test reports whether p is a member of the set.
func (o Options) Test(p Position) bool {
	return o&(1<<p) != 0
}

// Count returns the number of members.
func (o Options) Count() int {
	return bits.OnesCount16(uint16(o))
}

// Positions expands the mask into ascending positions.
func (o Options) Positions() []Position {
	ps := make([]Position, 0, o.Count())
	for p := Position(0); p < 15; p++ {
		if o.Test(p) {
			ps = append(ps, p)
		}
	}
	return ps
}

// Side is one player's half of the game state.
//
// Occupied bit 15 is unused and bit 0 is redundant with Remaining: it
// is set exactly while tiles wait in the starting pile. Keeping the
// redundant bit makes the legal-move mask algebra uniform across
// position 0 and the board proper.
type Side struct {
	// Remaining is the number of tiles still in the starting pile.
	Remaining uint16
	// Occupied is the positional occupancy of the tile path.
	Occupied Options
}

// Start is a side before any move: a full pile, nothing on the path.
var Start = Side{Remaining: Tiles, Occupied: 1}

// Complete is a side that has borne off all seven of its tiles.
var Complete = Side{}

// OnBoard returns how many of the side's tiles sit on positions
// 1 through 14.
func (s Side) OnBoard() int {
	return (s.Occupied >> 1).Count()
}

// Valid reports whether the side is internally consistent: the pile
// count in range, bit 0 mirroring it, and bit 15 clear.
func (s Side) Valid() bool {
	if s.Remaining > Tiles {
		return false
	}
	if s.Occupied.Test(0) != (s.Remaining > 0) {
		return false
	}
	if s.Occupied&0x8000 != 0 {
		return false
	}
	return int(s.Remaining)+s.OnBoard() <= Tiles
}

// Finished returns how many of the side's tiles reached the ending
// pile. The count is derived from tile conservation, so Finished
// panics if the side is not internally consistent rather than report
// a meaningless number.
func (s Side) Finished() int {
	if !s.Valid() {
		panic(fmt.Sprintf("game: invalid side %+v", s))
	}
	return Tiles - int(s.Remaining) - s.OnBoard()
}

// VerifySides reports whether the two sides can coexist: their tiles
// must never collide within the shared lane.
func VerifySides(self, other Side) bool {
	return self.Occupied&other.Occupied&sharedLane == 0
}
