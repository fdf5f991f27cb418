package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"
	"golang.org/x/sync/errgroup"

	"rummikub/internal/bot"
	"rummikub/internal/config"
	"rummikub/internal/domain"
	"rummikub/internal/engine"
	"rummikub/internal/logging"
)

// OptionsFrom extracts the per-game rule switches of cfg.
func OptionsFrom(cfg config.SimulationConfig) domain.Options {
	return domain.Options{
		HandSize:           cfg.HandSize,
		ColdStartEnabled:   cfg.ColdStartEnabled,
		ColdStartThreshold: cfg.ColdStartThreshold,
	}
}

// PolicyFor builds the policy named by cfg.BotLevel.
func PolicyFor(cfg config.SimulationConfig) (engine.Policy, error) {
	level, err := bot.ParseBotLevel(cfg.BotLevel)
	if err != nil {
		return nil, err
	}
	return bot.NewPolicy(level)
}

// ResolveSeed returns seed, or a time-based seed when seed is zero.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// DeriveSeeds draws n per-game seeds from master. Deriving them before any
// game starts keeps a batch reproducible whatever the worker count.
func DeriveSeeds(master int64, n int) []int64 {
	rng := rand.New(rand.NewSource(master))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}
	return seeds
}

// RunSeededGame deals and plays one game from seed without keeping a
// transcript.
func RunSeededGame(seed int64, names []string, opts domain.Options, policy engine.Policy, logger runtime.Logger) (domain.Outcome, error) {
	svc := NewService(rand.New(rand.NewSource(seed)))
	game, _, err := svc.StartGame(names, opts)
	if err != nil {
		return domain.Outcome{}, err
	}
	loop := engine.NewGameLoop(engine.NewTurnController(policy, logger), logger)
	return loop.Run(game), nil
}

// RunBatch plays cfg.Games independent games on cfg.Workers goroutines and
// aggregates their outcomes. The context is checked between games; a game in
// progress always runs to its end.
func RunBatch(ctx context.Context, cfg config.SimulationConfig, logger runtime.Logger) (Report, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if cfg.Games < 1 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidGameCount, cfg.Games)
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	policy, err := PolicyFor(cfg)
	if err != nil {
		return Report{}, err
	}

	seed := ResolveSeed(cfg.Seed)
	seeds := DeriveSeeds(seed, cfg.Games)
	opts := OptionsFrom(cfg)
	stats := NewStats(cfg.Players)

	logger.WithFields(map[string]interface{}{
		"games":   cfg.Games,
		"seed":    seed,
		"workers": cfg.Workers,
		"policy":  policy.Name(),
	}).Info("RunBatch: starting")
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, gameSeed := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, err := RunSeededGame(gameSeed, cfg.Players, opts, policy, logger)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			stats.Record(outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("RunBatch: stopped: %v", err)
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("RunBatch: cancelled: %v", err)
		return Report{}, err
	}

	report := stats.Report()
	report.Seed = seed
	logger.Info("RunBatch: %d games in %v", report.Games, time.Since(started))
	return report, nil
}
