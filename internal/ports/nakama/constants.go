package nakama

const (
	// RpcSimulate runs a batch of games and returns the aggregated report.
	RpcSimulate = "rummikub_simulate"
	// RpcPlayGame plays a single game and returns its transcript.
	RpcPlayGame = "rummikub_play_game"
	// RpcVerifyReceipt checks a receipt issued by RpcSimulate.
	RpcVerifyReceipt = "rummikub_verify_receipt"
)

// Runtime environment keys read by the module.
const (
	EnvConfigPath     = "rummikub_config_path"
	EnvReceiptSecret  = "rummikub_receipt_secret"
	EnvReceiptIssuer  = "rummikub_receipt_issuer"
	DefaultConfigPath = "data/simulation_config.json"
)

// gRPC status codes used for runtime errors.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
