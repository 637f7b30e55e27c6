/*
Package logging offers a client for emitting log entries from the mock API
function to the Tarmac host runtime.

Each level (Info, Warn, Error, Debug, Trace) is a host call on the logging
capability whose function name is the level and whose payload is the message.
Logging is best-effort: host failures are swallowed so they never change the
caller's control flow. Nop returns a Client that discards everything.
*/
package logging
