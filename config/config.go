package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the simulation settings, read from the environment.
type Config struct {
	LogLevel   string `env:"UR_LOG_LEVEL" env-default:"info"`
	Games      int    `env:"UR_GAMES" env-default:"10000"`
	Seed       uint64 `env:"UR_SEED" env-default:"0"`
	ResultsDir string `env:"UR_RESULTS_DIR" env-default:"results"`
}

// MustLoad reads the configuration from the environment.
func MustLoad() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}
