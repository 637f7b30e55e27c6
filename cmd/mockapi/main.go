// Command mockapi is the Tarmac WebAssembly function serving the mock API.
//
// Build it with TinyGo for the wasi target and load it into a Tarmac host:
//
//	tinygo build -o mockapi.wasm -target wasi ./cmd/mockapi
package main

import (
	"fmt"

	mockapi "github.com/tarmac-project/mockapi"
	"github.com/tarmac-project/mockapi/logging"
	"github.com/tarmac-project/mockapi/metrics"
	"github.com/tarmac-project/mockapi/server"
)

func main() {
	logger, err := logging.New(logging.Config{})
	if err != nil {
		return
	}

	if err := run(mockapi.RuntimeConfig{Namespace: mockapi.DefaultNamespace}, logger, nil); err != nil {
		logger.Error(fmt.Sprintf("unable to start mockapi: %s", err))
	}
}

// run wires the server and registers it with the host. A nil metrics client
// uses the host metrics capability.
func run(runtime mockapi.RuntimeConfig, logger logging.Client, m metrics.Client) error {
	if m == nil {
		hm, err := metrics.New(metrics.Config{SDKConfig: runtime})
		if err != nil {
			return fmt.Errorf("creating metrics client: %w", err)
		}
		m = hm
	}

	srv, err := server.New(server.Config{Logger: logger, Metrics: m})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if _, err := mockapi.New(mockapi.Config{Namespace: runtime.Namespace, Handler: srv.Handle}); err != nil {
		return fmt.Errorf("registering handler: %w", err)
	}

	return nil
}
