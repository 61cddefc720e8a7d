package game

import "fmt"

// LegalMoves returns the positions the acting player may move a tile
// from, given the opponent's side and a roll of steps.
//
// Bit p of the result is set iff all of the following hold:
//  1. The player has a tile at p (for p = 0, tiles remain in the pile).
//  2. The destination does not hold one of the player's own tiles.
//  3. The destination is not the central rosette while the opponent
//     holds it.
//  4. The destination is no farther than the ending pile.
//
// A roll of zero yields the empty set naturally. Steps outside [0..4]
// is a programming error and panics. This is a pure query: neither
// side is mutated.
func LegalMoves(self, other Side, steps Steps) Options {
	if steps > MaxSteps {
		panic(fmt.Sprintf("game: steps %d outside [0..4]", steps))
	}
	// Every position starts as legal.
	options := Options(0x7FFF)
	// 1. You have a tile at the position.
	options &= self.Occupied
	// 2. You don't land on your own tile.
	options &^= self.Occupied & (self.Occupied >> steps)
	// 3. You don't land on the central rosette while the opponent is on it.
	options &^= (other.Occupied & (1 << CentralRosette)) >> steps
	// 4. You don't land beyond the ending pile.
	options &= 0xFFFF >> steps
	return options
}

// Apply moves the acting player's tile from start by steps, updating
// both sides in place, and reports whether the player goes again.
//
// The move must come from LegalMoves for the same pair of sides;
// Apply does not re-validate. Landing on an opponent's tile in the
// shared lane captures it, sending it back to the opponent's pile.
// Landing exactly on the ending pile bears the tile off for good.
func Apply(self, other *Side, start Position, steps Steps) bool {
	end := start + Position(steps)

	// Pick up the tile from the start of the move...
	if start == 0 {
		self.Remaining--
		if self.Remaining == 0 {
			self.Occupied &^= 1
		}
	} else {
		self.Occupied &^= 1 << start
	}
	// ...and place it at the end, unless it left the board.
	if end < 15 {
		self.Occupied |= 1 << end
	}

	// Send the opponent's tile home if we land on it in the middle.
	// The central rosette cannot be contested: LegalMoves forbids
	// landing there while the opponent holds it.
	if sharedLane.Test(end) && other.Occupied.Test(end) {
		other.Occupied &^= 1 << end
		other.Remaining++
		other.Occupied |= 1
	}

	// Go again if the tile ended on a rosette.
	return end == FirstRosette || end == CentralRosette || end == LastRosette
}
