/*
Package metrics provides a client for recording custom metrics through the
Tarmac host runtime.

Counters and histograms are encoded as protobuf payloads and sent over waPC
host calls on the metrics capability. Emission is best-effort, Prometheus
style: Inc and Observe never return errors, and marshal or host-call failures
are swallowed. Nop returns a Client whose handles discard every update.
*/
package metrics
