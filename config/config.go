// Package config loads construction-time settings for decks and boards
// from the environment, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/cribbage/engine"
)

// Config holds the settings read from the environment.
type Config struct {
	Players   int    `env:"CRIBBAGE_PLAYERS" envDefault:"2"`
	Seed      uint64 `env:"CRIBBAGE_SEED" envDefault:"0"` // 0 = seed from the clock
	LogLevel  string `env:"CRIBBAGE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CRIBBAGE_LOG_FORMAT" envDefault:"text"`
}

// Load reads the given .env files (".env" when none are given) into the
// process environment, then parses Config from it. Missing files are skipped.
// Variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Logger builds a logrus logger with the configured level and format.
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetLevel(level)
	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log format %q: want text or json", c.LogFormat)
	}
	return l, nil
}

// NewDeck returns a deck seeded from Seed when it is non-zero.
func (c Config) NewDeck(log logrus.FieldLogger) *engine.Deck {
	opts := []engine.DeckOption{engine.WithDeckLogger(log)}
	if c.Seed != 0 {
		opts = append(opts, engine.WithSeed(c.Seed))
	}
	return engine.NewDeck(opts...)
}

// NewBoard returns a board for Players players.
func (c Config) NewBoard(log logrus.FieldLogger) *engine.Board {
	return engine.NewBoard(c.Players, engine.WithBoardLogger(log))
}
