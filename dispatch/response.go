package dispatch

import "net/http"

// Status is the outcome tag carried by a Response.
type Status string

const (
	// StatusOK marks a successful response; Data carries the result.
	StatusOK Status = "ok"

	// StatusError marks a failed response; Message describes the failure.
	StatusError Status = "error"
)

// Response is the structured result of a dispatch.
type Response struct {
	Status  Status `json:"status"`
	Data    string `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// OK reports whether the response carries StatusOK.
func (r Response) OK() bool { return r.Status == StatusOK }

// Text returns Data for successful responses and Message otherwise.
func (r Response) Text() string {
	if r.OK() {
		return r.Data
	}
	return r.Message
}

// Success builds a StatusOK response with a 200 code.
func Success(data string) Response {
	return Response{Status: StatusOK, Data: data, Code: http.StatusOK}
}

// Failure builds a StatusError response with the given code.
func Failure(message string, code int) Response {
	return Response{Status: StatusError, Message: message, Code: code}
}

// InvalidEndpoint is returned for endpoints missing from the rule table.
func InvalidEndpoint() Response {
	return Failure("Invalid endpoint", http.StatusNotFound)
}
