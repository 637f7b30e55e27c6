/*
Package hostmock provides a pretend waPC host for tests.

Components in this module talk to the Tarmac host through a HostCall function
(namespace, capability, function, payload). hostmock stands in for that host
so tests can check exactly what a component sends and script what it gets
back, without a WebAssembly runtime.

What it can do

  - Enforce routing: ExpectedNamespace, ExpectedCapability and
    ExpectedFunction are checked when set; blank fields are wildcards.
  - Inspect payloads: PayloadValidator decodes and asserts request contents.
  - Script responses: Response returns fixed bytes; Handler computes the
    response from the payload, which is how tests route a client straight
    into a real guest handler.
  - Inject failures: Fail with an optional Error.
  - Record calls: every HostCall is appended to the call log (see Calls).

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "function",
	  ExpectedFunction:   "mockapi",
	  Handler:            srv.Handle,
	})

	client, _ := apiclient.New(apiclient.Config{HostCall: m.HostCall})

Behavior

  - If Fail is true, HostCall returns Error, or ErrOperationFailed when Error
    is nil.
  - Otherwise routing is enforced and PayloadValidator runs when provided.
  - Handler, when set, produces the response and error. Else Response, when
    set, provides the bytes. Else HostCall returns nil, nil.
*/
package hostmock
