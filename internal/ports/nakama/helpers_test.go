package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type rpcFunc = func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)

// fakeInitializer records RPC registrations. Any other Initializer method
// panics through the nil embedded interface.
type fakeInitializer struct {
	runtime.Initializer
	rpcs map[string]rpcFunc
}

func (f *fakeInitializer) RegisterRpc(id string, fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)) error {
	if f.rpcs == nil {
		f.rpcs = make(map[string]rpcFunc)
	}
	f.rpcs[id] = fn
	return nil
}

func decodeResponse(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return out
}

func assertRuntimeCode(t *testing.T, err error, code int) {
	t.Helper()
	var rerr *runtime.Error
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want runtime error with code %d", err, code)
	}
	if rerr.Code != code {
		t.Fatalf("code = %d, want %d (%s)", rerr.Code, code, rerr.Message)
	}
}

func withEnv(env map[string]string) context.Context {
	return context.WithValue(context.Background(), runtime.RUNTIME_CTX_ENV, env)
}
