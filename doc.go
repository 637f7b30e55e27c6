/*
Package mockapi is the entry point for the mock API Tarmac function.

The function simulates a tiny HTTP-style API for teaching test-writing
technique: a fixed user directory (package user) and an endpoint response
dispatcher (package dispatch). New registers the guest handler with waPC and
returns a RuntimeConfig that is shared by the host capability clients
(logging, metrics, function). DefaultNamespace is used when a namespace is not
explicitly provided.

Nothing here performs real network I/O. Callers that want to exercise their
own error handling should reach for package mock instead of the real client.
*/
package mockapi
