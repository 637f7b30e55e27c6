/*
Package apiclient calls the mock API function from another Tarmac function.

Requests are encoded as Tarmac HTTP protobufs (the endpoint is the Url, the
payload is a JSON Body) and delivered through the function capability. API
failures such as "Invalid endpoint" come back as ordinary dispatch.Response
values with a nil error; Go errors are reserved for transport and encoding
problems and can be checked with errors.Is against the exported sentinels and
the root package's host errors.

Tests that only need canned results should use package mock, which implements
the same Client interface without a host.
*/
package apiclient
