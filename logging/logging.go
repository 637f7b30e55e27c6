package logging

import (
	mockapi "github.com/tarmac-project/mockapi"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "logging"

// HostCall defines the waPC host function signature used for logging.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client exposes convenience helpers for sending log entries to the host runtime.
type Client interface {
	Info(message string)
	Warn(message string)
	Error(message string)
	Debug(message string)
	Trace(message string)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig mockapi.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall HostCall
}

type client struct {
	runtime  mockapi.RuntimeConfig
	hostCall HostCall
}

// New creates a Client that emits logs through the configured host capability.
func New(cfg Config) (Client, error) {
	runtimeCfg := cfg.SDKConfig
	if runtimeCfg.Namespace == "" {
		runtimeCfg.Namespace = mockapi.DefaultNamespace
	}

	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{
		runtime:  runtimeCfg,
		hostCall: hostCall,
	}, nil
}

func (c *client) Info(message string)  { c.log("Info", message) }
func (c *client) Warn(message string)  { c.log("Warn", message) }
func (c *client) Error(message string) { c.log("Error", message) }
func (c *client) Debug(message string) { c.log("Debug", message) }
func (c *client) Trace(message string) { c.log("Trace", message) }

func (c *client) log(level string, message string) {
	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, level, []byte(message))
}

type nop struct{}

// Nop returns a Client that discards every entry.
func Nop() Client { return nop{} }

func (nop) Info(string)  {}
func (nop) Warn(string)  {}
func (nop) Error(string) {}
func (nop) Debug(string) {}
func (nop) Trace(string) {}
