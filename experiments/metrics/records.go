package metrics

import "time"

// AgentConfig identifies a policy taking part in an experiment.
type AgentConfig struct {
	ID     int
	Policy string
}

// GameMetric captures the outcome of a single game.
type GameMetric struct {
	StartingPlayer int // AgentConfig.ID of the agent that rolled first
	Winner         string
	Rolls          int
	Duration       time.Duration
}

// GameRecord ties a game outcome to the agents that produced it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}
