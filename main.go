// Play the Royal Game of Ur: one interactive game against a reference
// policy, or a batch of simulated matchups.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ur/agent"
	"ur/config"
	"ur/engine"
	"ur/experiments"
	"ur/game"
)

func main() {
	mode := flag.String("mode", "play", "play an interactive game, or simulate matchups")
	name := flag.String("name", "Sam", "interactive player's name")
	opponent := flag.String("opponent", "closest", "opponent policy: farthest or closest")
	flag.Parse()

	cfg := config.MustLoad()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	switch *mode {
	case "play":
		playInteractive(*name, *opponent)
	case "simulate":
		err := experiments.RunMatchupExperiment(experiments.Config{
			Games:      cfg.Games,
			Seed:       cfg.Seed,
			ResultsDir: cfg.ResultsDir,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}

func playInteractive(name, opponent string) {
	fmt.Println("Hello, world! Welcome to the Royal Game of Ur.")

	human := agent.NewInteractive(name, os.Stdin, os.Stdout)
	e := engine.LocalEngine(human, newAgent(opponent))

	winner, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	self, other := e.Sides()
	fmt.Println(game.Render(self, other))
	fmt.Printf("%s wins after %d rolls!\n", winner, e.Rolls())
}

func newAgent(policy string) agent.Agent {
	switch policy {
	case "farthest":
		return agent.Farthest{}
	case "closest":
		return agent.Closest{}
	default:
		fmt.Fprintf(os.Stderr, "unknown policy %q\n", policy)
		os.Exit(2)
		return nil
	}
}
