package mockapi

import (
	"errors"

	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	// DefaultNamespace is used when no explicit namespace is provided.
	DefaultNamespace = "tarmac"

	// HandlerName is the waPC function name the guest handler is registered under.
	HandlerName = "handler"
)

var (
	// ErrHandlerNil is returned when the provided function handler is nil.
	ErrHandlerNil = errors.New("function handler cannot be nil")
)

// Handler processes a raw request payload and returns the raw response.
type Handler func([]byte) ([]byte, error)

// Config provides configuration options for function initialization.
type Config struct {
	// Namespace controls the function namespace to use for host callbacks.
	// If empty, DefaultNamespace is used.
	Namespace string

	// Handler is registered as the main WebAssembly entry point.
	Handler Handler
}

// RuntimeConfig carries configuration used during creation of capability clients.
type RuntimeConfig struct {
	// Namespace is the function namespace used to scope host interactions.
	Namespace string
}

// Function represents the initialized runtime with a registered waPC handler.
type Function struct {
	runtime RuntimeConfig
	handler Handler
}

// New registers the handler with waPC and returns the initialized Function.
func New(config Config) (*Function, error) {
	if config.Handler == nil {
		return nil, ErrHandlerNil
	}

	cfg := RuntimeConfig{Namespace: DefaultNamespace}
	if config.Namespace != "" {
		cfg.Namespace = config.Namespace
	}

	fn := &Function{
		runtime: cfg,
		handler: config.Handler,
	}

	wapc.RegisterFunction(HandlerName, func(payload []byte) ([]byte, error) {
		return fn.handler(payload)
	})

	return fn, nil
}

// Config returns the current runtime configuration snapshot.
func (f *Function) Config() RuntimeConfig { return f.runtime }

// Handle invokes the registered handler directly, bypassing waPC.
func (f *Function) Handle(payload []byte) ([]byte, error) { return f.handler(payload) }
