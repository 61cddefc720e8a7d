// Package experiments simulates batches of independent games between
// the reference policies and records the outcomes.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"ur/agent"
	"ur/engine"
	"ur/experiments/metrics"
	"ur/game"
)

// Config controls a batch run.
type Config struct {
	// Games is the number of games per matchup.
	Games int
	// Seed, when nonzero, makes the whole batch reproducible. Each
	// game still rolls from its own generator.
	Seed uint64
	// ResultsDir is where the CSV records land.
	ResultsDir string
}

var configs = []metrics.AgentConfig{
	{ID: 1, Policy: "farthest"},
	{ID: 2, Policy: "closest"},
}

// RunMatchupExperiment pits every ordered pair of reference policies
// against each other, Config.Games games apiece, tallies the wins,
// and writes per-game records as CSV.
func RunMatchupExperiment(cfg Config) error {
	// Each pairing runs both ways so each policy gets to start.
	matchUps := [][]metrics.AgentConfig{}
	for _, config1 := range configs {
		for _, config2 := range configs {
			if config1.ID != config2.ID {
				matchUps = append(matchUps, []metrics.AgentConfig{config1, config2})
			}
		}
	}

	log.Info().Int("games", cfg.Games).Msg("starting matchup experiment...")

	count := 0
	gameRecords := []metrics.GameRecord{}
	wins := map[string]int{}

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			seed := cfg.Seed
			if seed != 0 {
				seed += uint64(count)
			}

			winner, gameMetric, err := runGame(config1, config2, seed)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			wins[winner]++
			gameMetric.StartingPlayer = config1.ID
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	for policy, won := range wins {
		log.Info().Str("policy", policy).Int("won", won).Int("games", count).Msg("tally")
	}

	// Store experiment metadata and results.
	writer, err := metrics.NewWriter(cfg.ResultsDir, "matchups")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return nil
}

// runGame executes a single game between two policies and returns the
// winner.
func runGame(config1, config2 metrics.AgentConfig, seed uint64) (string, metrics.GameMetric, error) {
	options := []engine.Option{}
	if seed != 0 {
		options = append(options, engine.WithRoller(game.NewSeededRoller(seed)))
	}
	e := engine.LocalEngine(newAgent(config1.Policy), newAgent(config2.Policy), options...)

	start := time.Now()
	winner, err := e.Run()
	if err != nil {
		return "", metrics.GameMetric{}, err
	}

	return winner, metrics.GameMetric{
		Winner:   winner,
		Rolls:    e.Rolls(),
		Duration: time.Since(start),
	}, nil
}

func newAgent(policy string) agent.Agent {
	switch policy {
	case "farthest":
		return agent.Farthest{}
	case "closest":
		return agent.Closest{}
	default:
		panic(fmt.Sprintf("experiments: unknown policy %q", policy))
	}
}
