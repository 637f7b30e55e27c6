package dispatch

import (
	"net/http"
	"sort"
)

const (
	// EndpointExample accepts only the payload {"key": "value"}.
	EndpointExample = "/example"

	// EndpointSpecialCase requires a truthy "special" key.
	EndpointSpecialCase = "/special_case"
)

// Payload is the decoded request body sent alongside an endpoint name.
type Payload map[string]any

// Rule pairs a payload predicate with the responses it selects.
type Rule struct {
	// Validate reports whether the payload is acceptable. It must not panic
	// on malformed input.
	Validate func(Payload) bool

	// Success is returned when Validate reports true.
	Success Response

	// Failure is returned when Validate reports false.
	Failure Response
}

// Apply runs the predicate and returns the selected response.
func (r Rule) Apply(p Payload) Response {
	if r.Validate != nil && r.Validate(p) {
		return r.Success
	}
	return r.Failure
}

// Dispatcher resolves an endpoint and payload into a Response.
type Dispatcher interface {
	Dispatch(endpoint string, payload Payload) Response
}

// Func adapts a plain function to the Dispatcher interface.
type Func func(endpoint string, payload Payload) Response

// Dispatch calls f(endpoint, payload).
func (f Func) Dispatch(endpoint string, payload Payload) Response { return f(endpoint, payload) }

// Default is the Dispatcher backed by the fixed rule table.
var Default Dispatcher = Func(Dispatch)

// rules is never written after initialization.
var rules = map[string]Rule{
	EndpointExample: {
		Validate: isStandardRequest,
		Success:  Success("response for standard request"),
		Failure:  Failure("Unexpected data", http.StatusBadRequest),
	},
	EndpointSpecialCase: {
		Validate: hasSpecialKey,
		Success:  Success("special response"),
		Failure:  Failure("Missing special key", http.StatusBadRequest),
	},
}

// Dispatch looks up the rule for endpoint and applies it to payload.
func Dispatch(endpoint string, payload Payload) Response {
	rule, ok := rules[endpoint]
	if !ok {
		return InvalidEndpoint()
	}
	return rule.Apply(payload)
}

// Lookup returns the rule registered for endpoint.
func Lookup(endpoint string) (Rule, bool) {
	r, ok := rules[endpoint]
	return r, ok
}

// Endpoints returns the known endpoint names in sorted order.
func Endpoints() []string {
	out := make([]string, 0, len(rules))
	for e := range rules {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
