package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("entry move from a full pile", func(t *testing.T) {
		options := LegalMoves(Start, Start, 2)
		require.Equal(t, Options(1), options,
			"Only entering from the pile should be legal at the start")
	})

	t.Run("zero steps yields no moves", func(t *testing.T) {
		require.Equal(t, Options(0), LegalMoves(Start, Start, 0))
		require.Equal(t, Options(0), LegalMoves(side(4, 2, 6, 9), Start, 0))
	})

	t.Run("own tile blocks the destination", func(t *testing.T) {
		self := side(6, 2)
		options := LegalMoves(self, Start, 2)
		require.False(t, options.Test(0), "Entering would land on our own tile at 2")
		require.True(t, options.Test(2))
	})

	t.Run("occupied central rosette is unreachable", func(t *testing.T) {
		other := side(6, CentralRosette)

		options := LegalMoves(side(5, 4, 6), other, 4)
		require.False(t, options.Test(4), "4+4 lands on the held central rosette")
		require.True(t, options.Test(6))

		options = LegalMoves(side(5, 6), other, 2)
		require.False(t, options.Test(6), "6+2 lands on the held central rosette")
		require.True(t, options.Test(0))
	})

	t.Run("free central rosette is reachable", func(t *testing.T) {
		options := LegalMoves(side(5, 4, 6), Start, 4)
		require.True(t, options.Test(4))
	})

	t.Run("no moving past the ending pile", func(t *testing.T) {
		options := LegalMoves(Side{Occupied: 1<<11 | 1<<12}, Start, 4)
		require.False(t, options.Test(12), "12+4 overshoots the ending pile")
		require.True(t, options.Test(11), "11+4 finishes exactly")
	})

	t.Run("panics outside the roll range", func(t *testing.T) {
		require.Panics(t, func() {
			LegalMoves(Start, Start, 5)
		}, "Should panic when steps is outside [0..4]")
	})
}

func TestApply(t *testing.T) {
	t.Run("entering from the pile", func(t *testing.T) {
		self, other := Start, Start

		again := Apply(&self, &other, 0, 2)

		require.False(t, again)
		require.Equal(t, side(6, 2), self)
		require.Equal(t, Start, other, "The opponent is untouched")
	})

	t.Run("emptying the pile clears bit zero", func(t *testing.T) {
		self, other := side(1), Start

		Apply(&self, &other, 0, 3)

		require.Equal(t, Side{Remaining: 0, Occupied: 1 << 3}, self)
	})

	t.Run("capture in the shared lane", func(t *testing.T) {
		self := side(5, 3)
		other := side(4, 7)
		require.True(t, LegalMoves(self, other, 4).Test(3))

		again := Apply(&self, &other, 3, 4)

		require.False(t, again)
		require.Equal(t, side(5, 7), self, "Our tile took over position 7")
		require.Equal(t, side(5), other, "The captured tile went back to the pile")
		require.True(t, VerifySides(self, other))
	})

	t.Run("no capture outside the shared lane", func(t *testing.T) {
		self := side(6, 10)
		other := side(6, 14)

		again := Apply(&self, &other, 10, 4)

		require.True(t, again, "Position 14 is a rosette")
		require.Equal(t, side(6, 14), self)
		require.Equal(t, side(6, 14), other,
			"The opponent's private 14 is a different cell and survives")
		require.True(t, VerifySides(self, other))
	})

	t.Run("rosettes grant another roll", func(t *testing.T) {
		self, other := Start, Start
		require.True(t, Apply(&self, &other, 0, 4), "Entry landing on 4")

		self, other = side(6, 4), Start
		require.True(t, Apply(&self, &other, 4, 4), "Landing on the central rosette")

		self, other = side(6, 12), Start
		require.True(t, Apply(&self, &other, 12, 2), "Landing on 14")

		self, other = side(6, 5), Start
		require.False(t, Apply(&self, &other, 5, 2), "7 is not a rosette")
	})

	t.Run("finishing the last tile", func(t *testing.T) {
		self := Side{Remaining: 0, Occupied: 1 << 11}
		other := side(3, 6, 9)

		again := Apply(&self, &other, 11, 4)

		require.False(t, again)
		require.Equal(t, Complete, self)
		require.Equal(t, Tiles, self.Finished())
	})

	t.Run("tiles are conserved through any legal move", func(t *testing.T) {
		self := side(4, 2, 6, 9)
		other := side(5, 7, 11)

		for _, steps := range []Steps{1, 2, 3, 4} {
			for _, start := range LegalMoves(self, other, steps).Positions() {
				s, o := self, other
				Apply(&s, &o, start, steps)
				require.Equal(t, Tiles, int(s.Remaining)+s.OnBoard()+s.Finished())
				require.Equal(t, Tiles, int(o.Remaining)+o.OnBoard()+o.Finished())
				require.True(t, VerifySides(s, o))
			}
		}
	})
}
