/*
Package server exposes the user directory and the endpoint dispatcher as a
Tarmac function handler.

Requests and responses use the Tarmac HTTP protobufs: the request Url is the
endpoint path and the Body is a JSON object payload. GET /users/{id} is served
by the user directory; every other request goes to the dispatcher. API-level
failures (400, 404) are ordinary responses with an OK host status, so Handle
only returns an error when the request bytes themselves cannot be decoded.
*/
package server
