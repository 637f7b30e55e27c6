package hostmock

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

type TestCase struct {
	name       string
	cfg        Config
	payload    []byte
	namespace  string
	capability string
	function   string
	want       []byte
	wantErr    error
}

var ErrMockError = errors.New("Mock error")

func TestHostMock(t *testing.T) {
	tt := []TestCase{
		{
			name: "Scripted response",
			cfg: Config{
				ExpectedNamespace:  "tarmac",
				ExpectedCapability: "function",
				ExpectedFunction:   "mockapi",
				PayloadValidator:   func([]byte) error { return nil },
				Response:           func() []byte { return []byte("ok") },
			},
			namespace:  "tarmac",
			capability: "function",
			function:   "mockapi",
			payload:    []byte("request"),
			want:       []byte("ok"),
		},
		{
			name: "Custom failure",
			cfg: Config{
				ExpectedNamespace: "tarmac",
				Error:             ErrMockError,
				Fail:              true,
				Response:          func() []byte { return []byte("ignored") },
			},
			namespace: "tarmac",
			payload:   []byte("request"),
			wantErr:   ErrMockError,
		},
		{
			name:      "Default failure",
			cfg:       Config{Fail: true},
			namespace: "tarmac",
			payload:   []byte("request"),
			wantErr:   ErrOperationFailed,
		},
		{
			name: "No response configured",
			cfg: Config{
				ExpectedNamespace:  "tarmac",
				ExpectedCapability: "logging",
				ExpectedFunction:   "Info",
			},
			namespace:  "tarmac",
			capability: "logging",
			function:   "Info",
			payload:    []byte("hello"),
		},
		{
			name: "Handler computes response",
			cfg: Config{
				Handler: func(p []byte) ([]byte, error) {
					return bytes.ToUpper(p), nil
				},
				Response: func() []byte { return []byte("shadowed") },
			},
			namespace:  "tarmac",
			capability: "function",
			function:   "mockapi",
			payload:    []byte("shout"),
			want:       []byte("SHOUT"),
		},
		{
			name: "Handler error",
			cfg: Config{
				Handler: func([]byte) ([]byte, error) { return nil, ErrMockError },
			},
			namespace: "tarmac",
			payload:   []byte("x"),
			wantErr:   ErrMockError,
		},
		{
			name: "Validator rejects payload",
			cfg: Config{
				PayloadValidator: func(payload []byte) error {
					if string(payload) != "valid" {
						return ErrMockError
					}
					return nil
				},
				Response: func() []byte { return []byte("ok") },
			},
			namespace: "tarmac",
			payload:   []byte("invalid"),
			wantErr:   ErrMockError,
		},
		{
			name: "Validator rejects empty payload",
			cfg: Config{
				PayloadValidator: func(payload []byte) error {
					if len(payload) == 0 {
						return ErrMockError
					}
					return nil
				},
			},
			namespace: "tarmac",
			payload:   nil,
			wantErr:   ErrMockError,
		},
		{
			name:       "Blank expectations are wildcards",
			cfg:        Config{Response: func() []byte { return []byte("any") }},
			namespace:  "whatever",
			capability: "whatever",
			function:   "whatever",
			want:       []byte("any"),
		},
		{
			name:      "Unexpected namespace",
			cfg:       Config{ExpectedNamespace: "expected"},
			namespace: "tarmac",
			wantErr:   ErrUnexpectedNamespace,
		},
		{
			name:       "Unexpected capability",
			cfg:        Config{ExpectedNamespace: "tarmac", ExpectedCapability: "metrics"},
			namespace:  "tarmac",
			capability: "logging",
			wantErr:    ErrUnexpectedCapability,
		},
		{
			name:       "Unexpected function",
			cfg:        Config{ExpectedCapability: "metrics", ExpectedFunction: "counter"},
			namespace:  "tarmac",
			capability: "metrics",
			function:   "gauge",
			wantErr:    ErrUnexpectedFunction,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("New Mock instance creation failed: %v", err)
			}

			got, err := mock.HostCall(tc.namespace, tc.capability, tc.function, tc.payload)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Mock call returned unexpected error: got %v, want %v", err, tc.wantErr)
			}

			if !bytes.Equal(got, tc.want) {
				t.Fatalf("Mock call returned unexpected response: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCalls(t *testing.T) {
	mock, err := New(Config{})
	if err != nil {
		t.Fatalf("New Mock instance creation failed: %v", err)
	}

	payload := []byte("first")
	_, _ = mock.HostCall("tarmac", "logging", "Info", payload)
	_, _ = mock.HostCall("tarmac", "metrics", "counter", []byte("second"))

	// Mutating the caller's buffer must not change the log.
	payload[0] = 'X'

	calls := mock.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}

	want := Call{Namespace: "tarmac", Capability: "logging", Function: "Info", Payload: []byte("first")}
	if calls[0].Namespace != want.Namespace || calls[0].Capability != want.Capability ||
		calls[0].Function != want.Function || !bytes.Equal(calls[0].Payload, want.Payload) {
		t.Fatalf("unexpected first call: %+v", calls[0])
	}

	if calls[1].Function != "counter" {
		t.Fatalf("unexpected second call: %+v", calls[1])
	}

	t.Run("Failed calls are recorded", func(t *testing.T) {
		failing, _ := New(Config{Fail: true})
		_, _ = failing.HostCall("tarmac", "function", "mockapi", nil)
		if len(failing.Calls()) != 1 {
			t.Fatalf("expected failed call to be recorded")
		}
	})

	t.Run("Reset", func(t *testing.T) {
		mock.Reset()
		if len(mock.Calls()) != 0 {
			t.Fatalf("expected empty call log after Reset")
		}
	})
}

func TestConcurrentCalls(t *testing.T) {
	mock, err := New(Config{Response: func() []byte { return []byte("ok") }})
	if err != nil {
		t.Fatalf("New Mock instance creation failed: %v", err)
	}

	const workers = 16
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = mock.HostCall("tarmac", "function", "mockapi", []byte("x"))
		}()
	}
	wg.Wait()

	if got := len(mock.Calls()); got != workers {
		t.Fatalf("expected %d calls, got %d", workers, got)
	}
}
