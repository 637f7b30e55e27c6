package mock

import (
	"errors"

	"github.com/tarmac-project/mockapi/apiclient"
	"github.com/tarmac-project/mockapi/dispatch"
	"github.com/tarmac-project/mockapi/user"
)

// Operation names recorded in Call.Op.
const (
	OpCall = "CALL"
	OpUser = "USER"
)

var (
	// ErrTimeout simulates a connection that timed out.
	ErrTimeout = errors.New("connection timed out")

	// ErrServer simulates a connection-level server failure.
	ErrServer = errors.New("server error")

	// ErrNotFound simulates a 404 surfaced as a transport error.
	ErrNotFound = errors.New("not found")

	// ErrInternalServer simulates a 500 surfaced as a transport error.
	ErrInternalServer = errors.New("internal server error")
)

// Config configures the mock client.
type Config struct {
	// Error, when set, is returned by every call.
	Error error

	// DefaultResponse, when set, replaces the real dispatcher for endpoints
	// without a configured response.
	DefaultResponse *dispatch.Response
}

// Response is a configured outcome for an endpoint.
type Response struct {
	Response dispatch.Response
	Err      error
}

// UserResponse is a configured outcome for a user id.
type UserResponse struct {
	Record user.Record
	Found  bool
	Err    error
}

// Call records an operation performed against the mock.
type Call struct {
	Op       string
	Endpoint string
	Payload  dispatch.Payload
	UserID   int
}

// Client implements apiclient.Client for tests.
type Client struct {
	cfg       Config
	responses map[string]Response
	users     map[int]UserResponse

	// Calls stores a history of operations for assertions.
	Calls []Call
}

var _ apiclient.Client = (*Client)(nil)

// New creates a new mock client.
func New(cfg Config) *Client {
	return &Client{
		cfg:       cfg,
		responses: make(map[string]Response),
		users:     make(map[int]UserResponse),
		Calls:     []Call{},
	}
}

// Timeout returns a Client whose every call fails with ErrTimeout.
func Timeout() *Client { return New(Config{Error: ErrTimeout}) }

// ServerError returns a Client whose every call fails with ErrServer.
func ServerError() *Client { return New(Config{Error: ErrServer}) }

// NotFound returns a Client whose every call fails with ErrNotFound.
func NotFound() *Client { return New(Config{Error: ErrNotFound}) }

// InternalServerError returns a Client whose every call fails with ErrInternalServer.
func InternalServerError() *Client { return New(Config{Error: ErrInternalServer}) }

// Call implements apiclient.Client.
func (m *Client) Call(endpoint string, payload dispatch.Payload) (dispatch.Response, error) {
	m.Calls = append(m.Calls, Call{Op: OpCall, Endpoint: endpoint, Payload: payload})

	if m.cfg.Error != nil {
		return dispatch.Response{}, m.cfg.Error
	}
	if endpoint == "" {
		return dispatch.Response{}, apiclient.ErrInvalidEndpoint
	}
	if r, ok := m.responses[endpoint]; ok {
		return r.Response, r.Err
	}
	if m.cfg.DefaultResponse != nil {
		return *m.cfg.DefaultResponse, nil
	}
	return dispatch.Dispatch(endpoint, payload), nil
}

// User implements apiclient.Client.
func (m *Client) User(id int) (user.Record, bool, error) {
	m.Calls = append(m.Calls, Call{Op: OpUser, UserID: id})

	if m.cfg.Error != nil {
		return user.Record{}, false, m.cfg.Error
	}
	if r, ok := m.users[id]; ok {
		return r.Record, r.Found, r.Err
	}
	rec, found := user.Lookup(id)
	return rec, found, nil
}

// On starts configuration of the outcome for endpoint.
func (m *Client) On(endpoint string) *ResponseBuilder {
	return &ResponseBuilder{m: m, endpoint: endpoint}
}

// OnUser starts configuration of the outcome for user id.
func (m *Client) OnUser(id int) *UserBuilder {
	return &UserBuilder{m: m, id: id}
}

// ResponseBuilder configures the outcome for a single endpoint.
type ResponseBuilder struct {
	m        *Client
	endpoint string
}

// Return sets the response returned for the endpoint.
func (b *ResponseBuilder) Return(resp dispatch.Response) *Client {
	b.m.responses[b.endpoint] = Response{Response: resp}
	return b.m
}

// ReturnError sets the error returned for the endpoint.
func (b *ResponseBuilder) ReturnError(err error) *Client {
	b.m.responses[b.endpoint] = Response{Err: err}
	return b.m
}

// UserBuilder configures the outcome for a single user id.
type UserBuilder struct {
	m  *Client
	id int
}

// Return makes the id resolve to rec.
func (b *UserBuilder) Return(rec user.Record) *Client {
	b.m.users[b.id] = UserResponse{Record: rec, Found: true}
	return b.m
}

// ReturnAbsent makes the id resolve to the absence signal.
func (b *UserBuilder) ReturnAbsent() *Client {
	b.m.users[b.id] = UserResponse{}
	return b.m
}

// ReturnError makes lookups of the id fail with err.
func (b *UserBuilder) ReturnError(err error) *Client {
	b.m.users[b.id] = UserResponse{Err: err}
	return b.m
}
