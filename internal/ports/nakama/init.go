package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"rummikub/internal/app"
	"rummikub/internal/config"
)

// InitModule loads the simulation config, sets up receipt signing and
// registers the RPCs with the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env := runtimeEnv(ctx)

	path := env[EnvConfigPath]
	if path == "" {
		path = DefaultConfigPath
	}
	if err := config.LoadSimulationConfig(path); err != nil {
		logger.Warn("InitModule: using default simulation config: %v", err)
	}

	receiptSigner = app.NewReceiptSigner(env[EnvReceiptSecret], env[EnvReceiptIssuer])
	if !receiptSigner.Enabled() {
		logger.Warn("InitModule: receipt secret or issuer missing from env, receipts disabled.")
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Rummikub Go module loaded.")
	return nil
}

func runtimeEnv(ctx context.Context) map[string]string {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if env == nil {
		return map[string]string{}
	}
	return env
}
