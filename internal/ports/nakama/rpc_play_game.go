package nakama

import (
	"context"
	"database/sql"
	"math/rand"
	"strconv"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/types/known/timestamppb"

	"rummikub/internal/app"
)

type playGameRequest struct {
	Seed             *int64   `json:"seed"`
	Players          []string `json:"players"`
	ColdStartEnabled *bool    `json:"cold_start_enabled"`
	BotLevel         *string  `json:"bot_level"`
}

// RpcPlaySingleGame plays one seeded game and returns its outcome and the
// full event transcript. Hands dealt and tiles drawn are included; the
// transcript is meant for inspection, not for live play.
// Payload: {"seed": 7, "players": [...], "cold_start_enabled": true, "bot_level": "greedy"}
func RpcPlaySingleGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req playGameRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	cfg, err := baseConfig(ctx)
	if err != nil {
		logger.Error("RpcPlaySingleGame: bad env overrides: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	simulationRequest{
		Seed:             req.Seed,
		Players:          req.Players,
		ColdStartEnabled: req.ColdStartEnabled,
		BotLevel:         req.BotLevel,
	}.apply(&cfg)

	policy, err := app.PolicyFor(cfg)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	seed := app.ResolveSeed(cfg.Seed)
	svc := app.NewService(rand.New(rand.NewSource(seed)))
	game, events, err := svc.StartGame(cfg.Players, app.OptionsFrom(cfg))
	if err != nil {
		if isClientError(err) {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		logger.Error("RpcPlaySingleGame: failed to start game: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	gameLogger := logger.WithField("game_id", game.ID)
	outcome, played := svc.PlayGame(game, policy, gameLogger)
	events = append(events, played...)
	gameLogger.Info("RpcPlaySingleGame: %s after %d rounds, winners %v", outcome.Phase, outcome.Rounds, outcome.Winners)

	finishedAt, err := timestampString(timestamppb.Now())
	if err != nil {
		logger.Error("RpcPlaySingleGame: failed to render timestamp: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	out, err := marshalResponse(map[string]interface{}{
		"seed":        strconv.FormatInt(seed, 10),
		"bot_level":   policy.Name(),
		"outcome":     outcomeToMap(outcome),
		"board":       groupsToList(game.Board),
		"events":      eventsToList(events),
		"finished_at": finishedAt,
	})
	if err != nil {
		logger.Error("RpcPlaySingleGame: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return out, nil
}
