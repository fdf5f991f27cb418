package nakama

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/types/known/timestamppb"

	"rummikub/internal/app"
)

// RpcVerifySimulationReceipt checks a receipt returned by RpcSimulateGames.
// Payload: {"receipt": "<jwt>"}
func RpcVerifySimulationReceipt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req struct {
		Receipt string `json:"receipt"`
	}
	if err := decodePayload(payload, &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	if req.Receipt == "" {
		return "", runtime.NewError("Receipt required", codeInvalidArgument)
	}

	claims, err := receiptSigner.Verify(req.Receipt)
	switch {
	case errors.Is(err, app.ErrReceiptsDisabled):
		logger.Warn("RpcVerifySimulationReceipt: receipts are disabled")
		return "", runtime.NewError("Receipts are not configured", codeInternal)
	case err != nil:
		logger.Debug("RpcVerifySimulationReceipt: rejected receipt: %v", err)
		return "", runtime.NewError("Invalid receipt", codeInvalidArgument)
	}

	expiresAt, err := timestampString(timestamppb.New(time.Unix(claims.ExpiresAt, 0)))
	if err != nil {
		logger.Error("RpcVerifySimulationReceipt: failed to render timestamp: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	wins := make(map[string]interface{}, len(claims.Wins))
	for name, w := range claims.Wins {
		wins[name] = w
	}
	out, err := marshalResponse(map[string]interface{}{
		"valid":      true,
		"id":         claims.ID,
		"issuer":     claims.Issuer,
		"expires_at": expiresAt,
		"seed":       strconv.FormatInt(claims.Seed, 10),
		"games":      claims.Games,
		"players":    stringsToList(claims.Players),
		"cold_start": claims.ColdStart,
		"wins":       wins,
	})
	if err != nil {
		logger.Error("RpcVerifySimulationReceipt: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return out, nil
}
