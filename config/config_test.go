package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := MustLoad()
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, 10000, cfg.Games)
		require.Equal(t, uint64(0), cfg.Seed)
		require.Equal(t, "results", cfg.ResultsDir)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("UR_GAMES", "42")
		t.Setenv("UR_SEED", "7")

		cfg := MustLoad()
		require.Equal(t, 42, cfg.Games)
		require.Equal(t, uint64(7), cfg.Seed)
	})
}
