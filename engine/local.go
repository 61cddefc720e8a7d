// Package engine drives one game of Ur to completion: it rolls the
// tetrahedra, asks the active agent for a move, applies it, and
// sequences the turns until one side bears off all of its tiles.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"ur/agent"
	"ur/game"
)

// Engine owns the canonical game state for one playthrough. Agents
// only ever see value copies of the sides; all mutation goes through
// the rules in the game package.
type Engine struct {
	sides   [2]game.Side
	agents  [2]agent.Agent
	roller  *game.Roller
	current int
	rolls   int
	winner  string
}

type Option func(*Engine)

// WithRoller replaces the entropy-seeded roller, for deterministic
// games.
func WithRoller(r *game.Roller) Option {
	return func(e *Engine) {
		e.roller = r
	}
}

// WithStartingPlayer sets which agent rolls first: 0 for the first
// agent, 1 for the second.
func WithStartingPlayer(i int) Option {
	if i != 0 && i != 1 {
		panic("engine: starting player must be 0 or 1")
	}
	return func(e *Engine) {
		e.current = i
	}
}

// LocalEngine sets up a fresh game between two agents.
func LocalEngine(first, second agent.Agent, options ...Option) *Engine {
	if first == nil || second == nil {
		panic("engine: need two agents")
	}

	e := &Engine{
		sides:  [2]game.Side{game.Start, game.Start},
		agents: [2]agent.Agent{first, second},
		roller: game.NewRoller(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Sides returns snapshots of the current player's side and the
// opponent's side, in that order.
func (e *Engine) Sides() (self, other game.Side) {
	return e.sides[e.current], e.sides[1-e.current]
}

// Rolls returns how many rolls the game has consumed so far.
func (e *Engine) Rolls() int { return e.rolls }

// Winner returns the winning agent's name, or "" while the game is
// still in progress.
func (e *Engine) Winner() string { return e.winner }

// Run executes the game loop until a winner is found. It only fails
// when an agent's input source does: illegal choices forfeit the roll
// and play continues.
func (e *Engine) Run() (string, error) {
	log.Info().Str("player", e.agents[e.current].Name()).Msg("game started")

	for e.winner == "" {
		again, err := e.playRoll()
		if err != nil {
			return "", err
		}
		e.rolls++

		if e.sides[e.current] == game.Complete {
			e.winner = e.agents[e.current].Name()
			break
		}
		if !again {
			e.current = 1 - e.current
		}
	}

	log.Info().Str("winner", e.winner).Int("rolls", e.rolls).Msg("game over")
	return e.winner, nil
}

// playRoll plays out one roll for the current player and reports
// whether that player goes again.
func (e *Engine) playRoll() (bool, error) {
	self := &e.sides[e.current]
	other := &e.sides[1-e.current]
	name := e.agents[e.current].Name()

	steps := e.roller.Roll()
	log.Debug().Str("player", name).Uint8("steps", uint8(steps)).Msg("rolled")

	// A zero roll ends the turn outright.
	if steps == 0 {
		return false, nil
	}

	options := game.LegalMoves(*self, *other, steps)
	if options == 0 {
		log.Debug().Str("player", name).Msg("no legal moves")
		return false, nil
	}

	start, err := e.agents[e.current].ChooseMove(*self, *other, steps, options)
	if err != nil {
		return false, fmt.Errorf("agent %s: %w", name, err)
	}
	log.Debug().Str("player", name).Uint8("start", uint8(start)).Msg("chose")

	// Submitting an invalid move forfeits the roll.
	if start == agent.Invalid || !options.Test(start) {
		log.Warn().Str("player", name).Uint8("start", uint8(start)).Msg("illegal choice, turn forfeited")
		return false, nil
	}

	again := game.Apply(self, other, start, steps)
	if !game.VerifySides(*self, *other) {
		panic(fmt.Sprintf("engine: sides collide in the shared lane after %s moved %d+%d", name, start, steps))
	}
	return again, nil
}
