package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	mockapi "github.com/tarmac-project/mockapi"
	"github.com/tarmac-project/mockapi/dispatch"
	"github.com/tarmac-project/mockapi/function"
	"github.com/tarmac-project/mockapi/user"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/http"
)

// DefaultFunction is the name the mock API function is registered under.
const DefaultFunction = "mockapi"

// Client calls the mock API.
type Client interface {
	// Call sends payload to endpoint and returns the API response.
	Call(endpoint string, payload dispatch.Payload) (dispatch.Response, error)

	// User looks up a user by id. The bool is false when no such user exists.
	User(id int) (user.Record, bool, error)
}

// Config configures the client and its host integration.
//
// SDKConfig supplies the namespace used for waPC host calls; when empty it
// defaults to mockapi.DefaultNamespace. Function names the target function
// and defaults to DefaultFunction. HostCall lets tests inject a custom host
// function; when nil the client uses wapc.HostCall.
type Config struct {
	// SDKConfig provides the runtime namespace for host calls.
	SDKConfig mockapi.RuntimeConfig
	// Function is the target function name.
	Function string
	// HostCall overrides the waPC host function used for requests.
	HostCall function.HostCall
}

// APIClient implements Client using function-to-function host calls.
type APIClient struct {
	target string
	fn     function.Client
}

var _ Client = (*APIClient)(nil)

var (
	// ErrInvalidEndpoint indicates an empty endpoint name.
	ErrInvalidEndpoint = errors.New("invalid endpoint provided")

	// ErrMarshalRequest wraps failures while encoding the request payload.
	ErrMarshalRequest = errors.New("failed to create request")

	// ErrUnmarshalResponse wraps failures while decoding the response.
	ErrUnmarshalResponse = errors.New("failed to unmarshal response")
)

const (
	hostStatusOK       = int32(200)
	hostStatusPartial  = int32(206)
	hostStatusBadInput = int32(400)
	hostStatusMissing  = int32(404)
	hostStatusError    = int32(500)
)

// New creates a new API client with the provided configuration.
func New(config Config) (*APIClient, error) {
	fn, err := function.New(function.Config{
		SDKConfig: config.SDKConfig,
		HostCall:  config.HostCall,
	})
	if err != nil {
		return nil, err
	}

	target := config.Function
	if target == "" {
		target = DefaultFunction
	}

	return &APIClient{target: target, fn: fn}, nil
}

// Call sends payload to endpoint and returns the decoded response.
func (c *APIClient) Call(endpoint string, payload dispatch.Payload) (dispatch.Response, error) {
	if endpoint == "" {
		return dispatch.Response{}, ErrInvalidEndpoint
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return dispatch.Response{}, errors.Join(ErrMarshalRequest, err)
	}

	r, err := c.do(&proto.HTTPClient{
		Method: http.MethodPost,
		Url:    endpoint,
		Body:   body,
		Headers: map[string]*proto.Header{
			"Content-Type": {Values: []string{"application/json"}},
		},
	})
	if err != nil {
		return dispatch.Response{}, err
	}

	var resp dispatch.Response
	if err := json.Unmarshal(r.GetBody(), &resp); err != nil {
		return dispatch.Response{}, errors.Join(ErrUnmarshalResponse, err)
	}
	if resp.Code == 0 {
		resp.Code = int(r.GetCode())
	}

	return resp, nil
}

// User fetches the user with id. A 404 from the API is reported as absent.
func (c *APIClient) User(id int) (user.Record, bool, error) {
	r, err := c.do(&proto.HTTPClient{
		Method:  http.MethodGet,
		Url:     "/users/" + strconv.Itoa(id),
		Headers: make(map[string]*proto.Header),
	})
	if err != nil {
		return user.Record{}, false, err
	}

	switch r.GetCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return user.Record{}, false, nil
	default:
		return user.Record{}, false, errors.Join(
			mockapi.ErrHostResponseInvalid,
			fmt.Errorf("unexpected user lookup code %d", r.GetCode()),
		)
	}

	var rec user.Record
	if err := json.Unmarshal(r.GetBody(), &rec); err != nil {
		return user.Record{}, false, errors.Join(ErrUnmarshalResponse, err)
	}
	return rec, true, nil
}

// do marshals the request, calls the target function and validates the host status.
func (c *APIClient) do(req *proto.HTTPClient) (*proto.HTTPClientResponse, error) {
	b, err := req.MarshalVT()
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}

	out, err := c.fn.Call(c.target, b)
	if err != nil {
		return nil, err
	}

	var r proto.HTTPClientResponse
	if err := r.UnmarshalVT(out); err != nil {
		return nil, errors.Join(mockapi.ErrHostResponseInvalid, ErrUnmarshalResponse, err)
	}

	if err := validateStatus(r.GetStatus()); err != nil {
		return nil, err
	}

	return &r, nil
}

func validateStatus(status *sdkproto.Status) error {
	if status == nil {
		return mockapi.ErrHostResponseInvalid
	}

	code := status.GetCode()
	switch code {
	case hostStatusOK, hostStatusPartial:
		return nil
	case hostStatusBadInput, hostStatusMissing, hostStatusError:
		detail := fmt.Sprintf("host status %d", code)
		if msg := status.GetStatus(); msg != "" {
			detail = fmt.Sprintf("%s: %s", detail, msg)
		}
		return errors.Join(mockapi.ErrHostError, errors.New(detail))
	default:
		return errors.Join(
			mockapi.ErrHostResponseInvalid,
			fmt.Errorf("unexpected host status code %d", code),
		)
	}
}
