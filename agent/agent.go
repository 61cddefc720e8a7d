// Package agent provides move-selection policies for the Ur engine.
package agent

import "ur/game"

// Invalid is the sentinel an agent returns to forfeit its roll. It is
// never a legal starting position: nothing moves out of the ending
// pile.
const Invalid game.Position = 15

// An Agent chooses a move for the acting player. Implementations see
// value copies of both sides and must not assume their choice is
// applied: the engine forfeits the roll on an illegal choice. Only
// agents backed by an external input source ever return an error.
type Agent interface {
	Name() string
	ChooseMove(self, other game.Side, steps game.Steps, options game.Options) (game.Position, error)
}

// Farthest always advances the tile farthest from the ending pile.
type Farthest struct{}

func (Farthest) Name() string { return "Farthest" }

func (Farthest) ChooseMove(_, _ game.Side, _ game.Steps, options game.Options) (game.Position, error) {
	for p := game.Position(0); p < 15; p++ {
		if options.Test(p) {
			return p, nil
		}
	}
	return Invalid, nil
}

// Closest always advances the tile closest to the ending pile.
type Closest struct{}

func (Closest) Name() string { return "Closest" }

func (Closest) ChooseMove(_, _ game.Side, _ game.Steps, options game.Options) (game.Position, error) {
	for p := game.Position(14); ; p-- {
		if options.Test(p) {
			return p, nil
		}
		if p == 0 {
			return Invalid, nil
		}
	}
}
