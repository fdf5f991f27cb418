package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Environment keys that override the file configuration.
const (
	EnvGames              = "rummikub_games"
	EnvSeed               = "rummikub_seed"
	EnvWorkers            = "rummikub_workers"
	EnvColdStart          = "rummikub_cold_start"
	EnvColdStartThreshold = "rummikub_cold_start_threshold"
	EnvBotLevel           = "rummikub_bot_level"
	EnvPlayers            = "rummikub_players"
)

var ErrInvalidConfig = errors.New("invalid simulation config")

// SimulationConfig describes a batch of simulated games.
type SimulationConfig struct {
	Players            []string `json:"players"`
	HandSize           int      `json:"hand_size"`
	Games              int      `json:"games"`
	ColdStartEnabled   bool     `json:"cold_start_enabled"`
	ColdStartThreshold int      `json:"cold_start_threshold"`
	Workers            int      `json:"workers"`
	// Seed drives every game of the batch. Zero picks a time-based seed.
	Seed     int64  `json:"seed"`
	BotLevel string `json:"bot_level"`
	// MaxGamesPerRPC caps the games a single RPC call may request.
	MaxGamesPerRPC int `json:"max_games_per_rpc"`
}

// Default returns the house configuration: four players, 14 tiles, a 30-point
// cold start and 10000 games.
func Default() SimulationConfig {
	return SimulationConfig{
		Players:            []string{"Winni", "Peter", "Rachel", "Carol"},
		HandSize:           14,
		Games:              10000,
		ColdStartEnabled:   true,
		ColdStartThreshold: 30,
		Workers:            4,
		BotLevel:           "greedy",
		MaxGamesPerRPC:     2000,
	}
}

// Parse decodes a JSON document over the defaults.
func Parse(data []byte) (SimulationConfig, error) {
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return SimulationConfig{}, fmt.Errorf("failed to unmarshal simulation config: %w", err)
	}
	return c, nil
}

// Validate reports the first problem with c.
func (c SimulationConfig) Validate() error {
	switch {
	case len(c.Players) < 2:
		return fmt.Errorf("%w: need at least 2 players, got %d", ErrInvalidConfig, len(c.Players))
	case c.HandSize < 1:
		return fmt.Errorf("%w: hand_size must be positive", ErrInvalidConfig)
	case c.Games < 1:
		return fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	case c.ColdStartEnabled && c.ColdStartThreshold < 1:
		return fmt.Errorf("%w: cold_start_threshold must be positive", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: empty player name", ErrInvalidConfig)
		}
		if seen[p] {
			return fmt.Errorf("%w: duplicate player %q", ErrInvalidConfig, p)
		}
		seen[p] = true
	}
	return nil
}

// ApplyEnv overrides fields from env. Unknown keys are ignored; malformed
// values are reported.
func (c *SimulationConfig) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvGames]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvGames, v)
		}
		c.Games = n
	}
	if v, ok := env[EnvSeed]; ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = n
	}
	if v, ok := env[EnvWorkers]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvWorkers, v)
		}
		c.Workers = n
	}
	if v, ok := env[EnvColdStart]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvColdStart, v)
		}
		c.ColdStartEnabled = b
	}
	if v, ok := env[EnvColdStartThreshold]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvColdStartThreshold, v)
		}
		c.ColdStartThreshold = n
	}
	if v, ok := env[EnvBotLevel]; ok && v != "" {
		c.BotLevel = v
	}
	if v, ok := env[EnvPlayers]; ok && v != "" {
		c.Players = SplitPlayers(v)
	}
	return nil
}

// SplitPlayers parses a comma separated list of names.
func SplitPlayers(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EnvFromOS collects the override keys present in the process environment.
func EnvFromOS() map[string]string {
	env := make(map[string]string)
	for _, k := range []string{EnvGames, EnvSeed, EnvWorkers, EnvColdStart, EnvColdStartThreshold, EnvBotLevel, EnvPlayers} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	return env
}

var (
	cfg      *SimulationConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadSimulationConfig loads the simulation configuration from the given path.
func LoadSimulationConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read simulation config: %w", err)
			return
		}

		c, err := Parse(data)
		if err != nil {
			loadErr = err
			return
		}
		if err := c.Validate(); err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetSimulationConfig returns a copy of the loaded configuration, or the
// defaults when nothing was loaded.
func GetSimulationConfig() SimulationConfig {
	if cfg == nil {
		return Default()
	}
	c := *cfg
	c.Players = append([]string(nil), cfg.Players...)
	return c
}
