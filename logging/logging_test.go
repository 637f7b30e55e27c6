package logging

import (
	"errors"
	"reflect"
	"testing"

	mockapi "github.com/tarmac-project/mockapi"
	"github.com/tarmac-project/mockapi/hostmock"
)

func TestNew(t *testing.T) {
	t.Parallel()

	customHostCall := func(string, string, string, []byte) ([]byte, error) {
		return nil, nil
	}

	tt := []struct {
		name        string
		namespace   string
		hostCall    HostCall
		wantNS      string
		wantHostPtr uintptr
	}{
		{
			name:      "custom namespace",
			namespace: "custom",
			wantNS:    "custom",
		},
		{
			name:        "default namespace with override",
			hostCall:    customHostCall,
			wantNS:      mockapi.DefaultNamespace,
			wantHostPtr: reflect.ValueOf(customHostCall).Pointer(),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := New(Config{SDKConfig: mockapi.RuntimeConfig{Namespace: tc.namespace}, HostCall: tc.hostCall})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			impl, ok := c.(*client)
			if !ok {
				t.Fatalf("expected *client implementation, got %T", c)
			}

			if impl.runtime.Namespace != tc.wantNS {
				t.Fatalf("namespace mismatch: want %q, got %q", tc.wantNS, impl.runtime.Namespace)
			}

			if tc.wantHostPtr != 0 {
				if got := reflect.ValueOf(impl.hostCall).Pointer(); got != tc.wantHostPtr {
					t.Fatalf("hostcall pointer mismatch: want %v, got %v", tc.wantHostPtr, got)
				}
			}
		})
	}
}

func TestClientLevels(t *testing.T) {
	t.Parallel()

	tt := []struct {
		level string
		call  func(Client, string)
	}{
		{"Info", Client.Info},
		{"Warn", Client.Warn},
		{"Error", Client.Error},
		{"Debug", Client.Debug},
		{"Trace", Client.Trace},
	}

	for _, tc := range tt {
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()

			mock, err := hostmock.New(hostmock.Config{
				ExpectedNamespace:  "tarmac",
				ExpectedCapability: capabilityName,
				ExpectedFunction:   tc.level,
				PayloadValidator: func(payload []byte) error {
					if string(payload) != "dispatch /example -> 200" {
						return errors.New("payload mismatch")
					}
					return nil
				},
			})
			if err != nil {
				t.Fatalf("hostmock: %v", err)
			}

			c, err := New(Config{HostCall: mock.HostCall})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			tc.call(c, "dispatch /example -> 200")

			calls := mock.Calls()
			if len(calls) != 1 {
				t.Fatalf("expected 1 host call, got %d", len(calls))
			}
			if calls[0].Function != tc.level {
				t.Fatalf("function mismatch: want %s, got %s", tc.level, calls[0].Function)
			}
		})
	}
}

func TestHostFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{Fail: true})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	// Must not panic.
	c.Error("host is down")

	if len(mock.Calls()) != 1 {
		t.Fatalf("expected the failed call to reach the host")
	}
}

func TestNop(t *testing.T) {
	t.Parallel()

	c := Nop()
	c.Info("a")
	c.Warn("b")
	c.Error("c")
	c.Debug("d")
	c.Trace("e")
}
