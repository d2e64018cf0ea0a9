package main

import (
	"os"

	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config is read from the environment. Fields left unset keep their defaults.
type Config struct {
	LogLevel    string `config:"DEPOT_LOG_LEVEL"`
	Entities    int    `config:"DEPOT_ENTITIES"`
	Seed        int64  `config:"DEPOT_SEED"`
	ProfilePath string `config:"DEPOT_PROFILE_PATH"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:    zerolog.InfoLevel.String(),
		Entities:    64,
		Seed:        1,
		ProfilePath: ".",
	}
}

func LoadConfig() (Config, error) {
	cfg := defaultConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load config from environment")
	}
	if cfg.Entities < 0 {
		return cfg, eris.Errorf("DEPOT_ENTITIES must not be negative, got %d", cfg.Entities)
	}
	return cfg, nil
}

// newLogger builds the console logger at the configured level.
func newLogger(cfg Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(err, "invalid DEPOT_LOG_LEVEL %q", cfg.LogLevel)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}
