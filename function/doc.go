/*
Package function provides a client for invoking other Tarmac functions
through the host runtime.

The API is raw bytes: callers supply a target function name and an input
payload and receive the target's output. The mock API client uses it to reach
the mock API handler registered by another guest.
*/
package function
