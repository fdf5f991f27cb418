package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/types/known/timestamppb"

	"rummikub/internal/app"
	"rummikub/internal/bot"
	"rummikub/internal/config"
)

// simulationRequest holds the optional overrides a client may send. Nil
// fields keep the configured value.
type simulationRequest struct {
	Games            *int     `json:"games"`
	Seed             *int64   `json:"seed"`
	Players          []string `json:"players"`
	ColdStartEnabled *bool    `json:"cold_start_enabled"`
	Workers          *int     `json:"workers"`
	BotLevel         *string  `json:"bot_level"`
}

// baseConfig is the loaded configuration with the runtime env overrides applied.
func baseConfig(ctx context.Context) (config.SimulationConfig, error) {
	cfg := config.GetSimulationConfig()
	if err := cfg.ApplyEnv(runtimeEnv(ctx)); err != nil {
		return config.SimulationConfig{}, err
	}
	return cfg, nil
}

func (r simulationRequest) apply(cfg *config.SimulationConfig) {
	if r.Games != nil {
		cfg.Games = *r.Games
	}
	if r.Seed != nil {
		cfg.Seed = *r.Seed
	}
	if len(r.Players) > 0 {
		cfg.Players = r.Players
	}
	if r.ColdStartEnabled != nil {
		cfg.ColdStartEnabled = *r.ColdStartEnabled
	}
	if r.Workers != nil {
		cfg.Workers = *r.Workers
	}
	if r.BotLevel != nil {
		cfg.BotLevel = *r.BotLevel
	}
}

func decodePayload(payload string, v interface{}) error {
	if payload == "" {
		return nil
	}
	return json.Unmarshal([]byte(payload), v)
}

// isClientError reports errors caused by the request rather than the server.
func isClientError(err error) bool {
	return errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, app.ErrInvalidGameCount) ||
		errors.Is(err, app.ErrTooFewPlayers) ||
		errors.Is(err, app.ErrInvalidPlayer) ||
		errors.Is(err, app.ErrNotEnoughTiles) ||
		errors.Is(err, bot.ErrUnknownBotLevel)
}

// RpcSimulateGames runs a batch of games and returns the aggregated report.
// Payload: {"games": 500, "seed": 7, "players": [...], "cold_start_enabled": true, "workers": 4, "bot_level": "greedy"}
// Every field is optional.
func RpcSimulateGames(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req simulationRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	cfg, err := baseConfig(ctx)
	if err != nil {
		logger.Error("RpcSimulateGames: bad env overrides: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	req.apply(&cfg)

	if cfg.MaxGamesPerRPC > 0 && cfg.Games > cfg.MaxGamesPerRPC {
		return "", runtime.NewError(fmt.Sprintf("At most %d games per call", cfg.MaxGamesPerRPC), codeInvalidArgument)
	}

	report, err := app.RunBatch(ctx, cfg, logger)
	if err != nil {
		if isClientError(err) {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		logger.Error("RpcSimulateGames: batch failed: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	generatedAt, err := timestampString(timestamppb.Now())
	if err != nil {
		logger.Error("RpcSimulateGames: failed to render timestamp: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	res := map[string]interface{}{
		"report":       reportToMap(report),
		"bot_level":    cfg.BotLevel,
		"cold_start":   cfg.ColdStartEnabled,
		"generated_at": generatedAt,
	}

	if receiptSigner.Enabled() {
		receipt, err := receiptSigner.Sign(report, cfg.ColdStartEnabled)
		if err != nil {
			logger.Error("RpcSimulateGames: failed to sign receipt: %v", err)
			return "", runtime.NewError("Internal error", codeInternal)
		}
		res["receipt"] = receipt
	}

	out, err := marshalResponse(res)
	if err != nil {
		logger.Error("RpcSimulateGames: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return out, nil
}
