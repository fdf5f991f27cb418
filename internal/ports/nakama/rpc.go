package nakama

import (
	"github.com/heroiclabs/nakama-common/runtime"

	"rummikub/internal/app"
)

// receiptSigner is configured by InitModule.
var receiptSigner *app.ReceiptSigner

// RegisterRPCs registers every RPC exposed by the module.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcSimulate, RpcSimulateGames); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcPlayGame, RpcPlaySingleGame); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcVerifyReceipt, RpcVerifySimulationReceipt); err != nil {
		return err
	}
	return nil
}
