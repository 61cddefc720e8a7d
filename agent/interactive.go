package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ur/game"
)

// Interactive asks a human to pick from the legal options, retrying
// until the input parses and names a legal move. Running out of input
// is returned as an error for the driver to handle; it is not a pass.
type Interactive struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

// NewInteractive returns an agent named name that prompts on out and
// reads choices from in, one per line.
func NewInteractive(name string, in io.Reader, out io.Writer) *Interactive {
	return &Interactive{
		name: name,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (a *Interactive) Name() string { return a.name }

func (a *Interactive) ChooseMove(self, other game.Side, steps game.Steps, options game.Options) (game.Position, error) {
	fmt.Fprintf(a.out, "Hello, %s!\n", a.name)
	fmt.Fprintln(a.out, "The current state (you are shown on top) is:")
	fmt.Fprintln(a.out, game.Render(self, other))
	fmt.Fprintf(a.out, "You rolled a %d.\n", steps)
	fmt.Fprintln(a.out, "Your options are:")
	for _, p := range options.Positions() {
		fmt.Fprintf(a.out, "> %d\n", p)
	}
	fmt.Fprint(a.out, "What do you choose? ")

	for {
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return Invalid, fmt.Errorf("read move for %s: %w", a.name, err)
			}
			return Invalid, fmt.Errorf("read move for %s: %w", a.name, io.ErrUnexpectedEOF)
		}

		move, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil || move < 0 || move > 14 {
			fmt.Fprintln(a.out, "Illegal format.")
			fmt.Fprint(a.out, "Please try again: ")
			continue
		}
		if !options.Test(game.Position(move)) {
			fmt.Fprintln(a.out, "Invalid option.")
			fmt.Fprint(a.out, "Please try again: ")
			continue
		}
		return game.Position(move), nil
	}
}
