/*
Package dispatch maps an endpoint name and payload to a canned API response.

The rule table is closed: each known endpoint carries a payload predicate and
two response templates. Dispatch always returns exactly one Response:

  - unknown endpoint: error, "Invalid endpoint", 404
  - predicate true: the endpoint's success response, 200
  - predicate false: the endpoint's failure response, 400

Errors are data. Malformed payloads, including nil, simply fail the predicate;
Dispatch never panics and never returns a Go error.

Known endpoints

	/example        payload must be exactly {"key": "value"}
	/special_case   payload must carry a truthy "special" key
*/
package dispatch
