package metrics

import (
	"errors"
	"regexp"

	mockapi "github.com/tarmac-project/mockapi"
	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "metrics"
	fnCounter      = "counter"
	fnHistogram    = "histogram"
)

var (
	// ErrInvalidMetricName indicates a metric name that does not match the supported format.
	ErrInvalidMetricName = errors.New("metric name is invalid")

	isMetricNameValid = regexp.MustCompile(`^[a-zA-Z0-9_:][a-zA-Z0-9_:]*$`)
)

// HostCall defines the waPC host function signature used by metrics operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client creates metric handles.
type Client interface {
	// NewCounter creates a named counter metric handle.
	NewCounter(name string) (*Counter, error)

	// NewHistogram creates a named histogram metric handle.
	NewHistogram(name string) (*Histogram, error)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig mockapi.RuntimeConfig

	// HostCall overrides the waPC host function used for metrics operations.
	HostCall HostCall
}

// HostMetrics is the metrics capability client implementation.
type HostMetrics struct {
	runtime  mockapi.RuntimeConfig
	hostCall HostCall
}

var _ Client = (*HostMetrics)(nil)

// sink sends encoded updates to the host. A zero sink discards them.
type sink struct {
	namespace string
	hostCall  HostCall
}

func (s sink) send(fn string, payload []byte, err error) {
	if err != nil || s.hostCall == nil {
		return
	}
	_, _ = s.hostCall(s.namespace, capabilityName, fn, payload)
}

// Counter is a named counter metric handle.
type Counter struct {
	name string
	sink sink
}

// Histogram is a named histogram metric handle.
type Histogram struct {
	name string
	sink sink
}

// New creates a metrics client with namespace defaults and optional host-call override.
func New(config Config) (*HostMetrics, error) {
	runtime := config.SDKConfig
	if runtime.Namespace == "" {
		runtime.Namespace = mockapi.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &HostMetrics{runtime: runtime, hostCall: hostCall}, nil
}

func (c *HostMetrics) newSink() sink {
	return sink{namespace: c.runtime.Namespace, hostCall: c.hostCall}
}

// NewCounter creates a named counter metric handle.
func (c *HostMetrics) NewCounter(name string) (*Counter, error) {
	if !isMetricNameValid.MatchString(name) {
		return nil, ErrInvalidMetricName
	}
	return &Counter{name: name, sink: c.newSink()}, nil
}

// NewHistogram creates a named histogram metric handle.
func (c *HostMetrics) NewHistogram(name string) (*Histogram, error) {
	if !isMetricNameValid.MatchString(name) {
		return nil, ErrInvalidMetricName
	}
	return &Histogram{name: name, sink: c.newSink()}, nil
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	payload, err := (&proto.MetricsCounter{Name: c.name}).MarshalVT()
	c.sink.send(fnCounter, payload, err)
}

// Observe records a value for the histogram.
func (h *Histogram) Observe(value float64) {
	payload, err := (&proto.MetricsHistogram{Name: h.name, Value: value}).MarshalVT()
	h.sink.send(fnHistogram, payload, err)
}

type nop struct{}

// Nop returns a Client whose handles discard every update. Names are still validated.
func Nop() Client { return nop{} }

func (nop) NewCounter(name string) (*Counter, error) {
	if !isMetricNameValid.MatchString(name) {
		return nil, ErrInvalidMetricName
	}
	return &Counter{name: name}, nil
}

func (nop) NewHistogram(name string) (*Histogram, error) {
	if !isMetricNameValid.MatchString(name) {
		return nil, ErrInvalidMetricName
	}
	return &Histogram{name: name}, nil
}
