package function

import (
	"errors"
	"strings"

	mockapi "github.com/tarmac-project/mockapi"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "function"

var (
	// ErrInvalidFunctionName indicates an empty or whitespace-only target name.
	ErrInvalidFunctionName = errors.New("function name is invalid")
)

// HostCall defines the waPC host function signature used for function calls.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client invokes other functions registered with the host.
type Client interface {
	// Call invokes fn with input and returns its output.
	Call(fn string, input []byte) ([]byte, error)
}

// Config holds options for the function client.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig mockapi.RuntimeConfig

	// HostCall overrides the waPC host function.
	HostCall HostCall
}

// FunctionClient is the function capability client implementation.
//
// revive:disable:exported // Name mirrors package for discoverability.
type FunctionClient struct {
	runtime  mockapi.RuntimeConfig
	hostCall HostCall
}

// revive:enable:exported

var _ Client = (*FunctionClient)(nil)

// New creates a new function client.
func New(config Config) (*FunctionClient, error) {
	runtime := config.SDKConfig
	if runtime.Namespace == "" {
		runtime.Namespace = mockapi.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &FunctionClient{runtime: runtime, hostCall: hostCall}, nil
}

// Call invokes fn through the host and returns its output bytes.
func (c *FunctionClient) Call(fn string, input []byte) ([]byte, error) {
	if strings.TrimSpace(fn) == "" {
		return nil, ErrInvalidFunctionName
	}

	out, err := c.hostCall(c.runtime.Namespace, capabilityName, fn, input)
	if err != nil {
		return nil, errors.Join(mockapi.ErrHostCall, err)
	}

	return out, nil
}
