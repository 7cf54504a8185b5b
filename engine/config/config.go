// Package config loads runtime settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig marks a setting that failed to parse or validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime parameters
type Config struct {
	TickRate      float64 // simulation ticks per second
	Seed          int64   // master seed; level i uses Seed+i
	Enemies       int     // enemies spawned per level
	TemplatesPath string  // optional YAML template overrides
	SoakLevels    int     // parallel levels in the soak runner
	SoakSeconds   float64 // simulated seconds per soak level
	LogLevel      string
	LogFormat     string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		TickRate:    60,
		Seed:        1,
		Enemies:     4,
		SoakLevels:  4,
		SoakSeconds: 30,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads files (default ".env") if present, then overlays environment
// variables on Default.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var err error
	if c.TickRate, err = floatVar(lookup, "ARENA_TICK_RATE", c.TickRate); err != nil {
		return Config{}, err
	}
	if c.Seed, err = intVar(lookup, "ARENA_SEED", c.Seed); err != nil {
		return Config{}, err
	}
	enemies, err := intVar(lookup, "ARENA_ENEMIES", int64(c.Enemies))
	if err != nil {
		return Config{}, err
	}
	c.Enemies = int(enemies)
	levels, err := intVar(lookup, "ARENA_SOAK_LEVELS", int64(c.SoakLevels))
	if err != nil {
		return Config{}, err
	}
	c.SoakLevels = int(levels)
	if c.SoakSeconds, err = floatVar(lookup, "ARENA_SOAK_SECONDS", c.SoakSeconds); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("ARENA_TEMPLATES"); ok {
		c.TemplatesPath = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	return c, c.Validate()
}

// Validate checks ranges
func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %v must be positive", ErrInvalidConfig, c.TickRate)
	case c.Enemies < 0:
		return fmt.Errorf("%w: enemy count %d must not be negative", ErrInvalidConfig, c.Enemies)
	case c.SoakLevels <= 0:
		return fmt.Errorf("%w: soak levels %d must be positive", ErrInvalidConfig, c.SoakLevels)
	case c.SoakSeconds <= 0:
		return fmt.Errorf("%w: soak seconds %v must be positive", ErrInvalidConfig, c.SoakSeconds)
	}
	return nil
}

func floatVar(lookup func(string) (string, bool), key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, v, err)
	}
	return f, nil
}

func intVar(lookup func(string) (string, bool), key string, def int64) (int64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, v, err)
	}
	return n, nil
}
