// Command rummisim runs a batch of simulated Rummikub games and prints the
// win statistics, with a focus on who passes the cold start first.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"rummikub/internal/app"
	"rummikub/internal/config"
	"rummikub/internal/logging"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "rummisim:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	asJSON     bool
	verbose    bool
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, opts, err := parseArgs(args, config.EnvFromOS())
	if err != nil {
		return err
	}

	level := "info"
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.NewZap(level)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	report, err := app.RunBatch(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return printReport(out, report)
}

// parseArgs builds the batch configuration: file (or defaults), then env,
// then the flags given on the command line.
func parseArgs(args []string, env map[string]string) (config.SimulationConfig, options, error) {
	var opts options
	fs := flag.NewFlagSet("rummisim", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to a simulation config JSON file")
	games := fs.Int("games", 0, "number of games to simulate")
	seed := fs.Int64("seed", 0, "master seed; 0 picks a time-based seed")
	workers := fs.Int("workers", 0, "number of games simulated in parallel")
	players := fs.String("players", "", "comma separated player names in seating order")
	coldStart := fs.Bool("cold-start", true, "enforce the cold-start rule")
	threshold := fs.Int("threshold", 0, "points needed to pass the cold start")
	botLevel := fs.String("bot", "", "board policy: greedy, thrifty or tactical")
	fs.BoolVar(&opts.asJSON, "json", false, "print the report as JSON")
	fs.BoolVar(&opts.verbose, "v", false, "log every turn")
	if err := fs.Parse(args); err != nil {
		return config.SimulationConfig{}, opts, err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		if err := config.LoadSimulationConfig(opts.configPath); err != nil {
			return config.SimulationConfig{}, opts, err
		}
		cfg = config.GetSimulationConfig()
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return config.SimulationConfig{}, opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "players":
			cfg.Players = config.SplitPlayers(*players)
		case "cold-start":
			cfg.ColdStartEnabled = *coldStart
		case "threshold":
			cfg.ColdStartThreshold = *threshold
		case "bot":
			cfg.BotLevel = *botLevel
		}
	})

	return cfg, opts, cfg.Validate()
}
