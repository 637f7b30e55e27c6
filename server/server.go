package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tarmac-project/mockapi/dispatch"
	"github.com/tarmac-project/mockapi/logging"
	"github.com/tarmac-project/mockapi/metrics"
	"github.com/tarmac-project/mockapi/user"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/http"
)

// UsersPrefix is the path prefix served by the user directory.
const UsersPrefix = "/users/"

const contentTypeJSON = "application/json"

var (
	// ErrInvalidRequest indicates request bytes that are not an HTTPClient message.
	ErrInvalidRequest = errors.New("invalid request payload")

	// ErrMarshalResponse wraps failures while encoding the response.
	ErrMarshalResponse = errors.New("failed to marshal response")
)

// Config wires the collaborators used by Server. Nil fields fall back to the
// package defaults and no-op observability.
type Config struct {
	// Dispatcher resolves endpoint requests. Defaults to dispatch.Default.
	Dispatcher dispatch.Dispatcher

	// Directory resolves user lookups. Defaults to user.Default.
	Directory user.Directory

	// Logger receives one entry per request.
	Logger logging.Client

	// Metrics records response counts and sizes.
	Metrics metrics.Client
}

// Server handles encoded mock API requests. It holds no mutable state.
type Server struct {
	dispatcher dispatch.Dispatcher
	directory  user.Directory
	log        logging.Client

	ok            *metrics.Counter
	badRequest    *metrics.Counter
	notFound      *metrics.Counter
	responseBytes *metrics.Histogram
}

// New creates a Server from cfg.
func New(cfg Config) (*Server, error) {
	s := &Server{
		dispatcher: cfg.Dispatcher,
		directory:  cfg.Directory,
		log:        cfg.Logger,
	}
	if s.dispatcher == nil {
		s.dispatcher = dispatch.Default
	}
	if s.directory == nil {
		s.directory = user.Default
	}
	if s.log == nil {
		s.log = logging.Nop()
	}

	m := cfg.Metrics
	if m == nil {
		m = metrics.Nop()
	}

	var err error
	if s.ok, err = m.NewCounter("mockapi_responses_ok"); err != nil {
		return nil, err
	}
	if s.badRequest, err = m.NewCounter("mockapi_responses_bad_request"); err != nil {
		return nil, err
	}
	if s.notFound, err = m.NewCounter("mockapi_responses_not_found"); err != nil {
		return nil, err
	}
	if s.responseBytes, err = m.NewHistogram("mockapi_response_bytes"); err != nil {
		return nil, err
	}

	return s, nil
}

// Handle decodes an HTTPClient request, serves it and returns an encoded
// HTTPClientResponse.
func (s *Server) Handle(payload []byte) ([]byte, error) {
	var req proto.HTTPClient
	if err := req.UnmarshalVT(payload); err != nil {
		s.log.Error(fmt.Sprintf("unable to decode request: %s", err))
		return nil, errors.Join(ErrInvalidRequest, err)
	}

	code, body, err := s.serve(req.GetMethod(), req.GetUrl(), req.GetBody())
	if err != nil {
		s.log.Error(fmt.Sprintf("unable to encode response for %s: %s", req.GetUrl(), err))
		return nil, errors.Join(ErrMarshalResponse, err)
	}

	resp := &proto.HTTPClientResponse{
		Status: &sdkproto.Status{Status: "OK", Code: http.StatusOK},
		Code:   int32(code),
		Headers: map[string]*proto.Header{
			"Content-Type": {Values: []string{contentTypeJSON}},
		},
		Body: body,
	}

	out, err := resp.MarshalVT()
	if err != nil {
		return nil, errors.Join(ErrMarshalResponse, err)
	}

	s.observe(req.GetMethod(), req.GetUrl(), code, len(body))
	return out, nil
}

// serve routes a request and returns the API code and JSON body.
func (s *Server) serve(method, path string, body []byte) (int, []byte, error) {
	if method == http.MethodGet && strings.HasPrefix(path, UsersPrefix) {
		return s.lookupUser(strings.TrimPrefix(path, UsersPrefix))
	}

	resp := s.dispatcher.Dispatch(path, decodePayload(body))
	b, err := json.Marshal(resp)
	return resp.Code, b, err
}

func (s *Server) lookupUser(rawID string) (int, []byte, error) {
	id, err := strconv.Atoi(rawID)
	if err == nil {
		if rec, ok := s.directory.Lookup(id); ok {
			b, err := json.Marshal(rec)
			return http.StatusOK, b, err
		}
	}

	resp := UserNotFound()
	b, err := json.Marshal(resp)
	return resp.Code, b, err
}

// UserNotFound is returned for ids missing from the directory.
func UserNotFound() dispatch.Response {
	return dispatch.Failure("User not found", http.StatusNotFound)
}

// decodePayload returns nil for empty bodies and anything that is not a JSON object.
func decodePayload(body []byte) dispatch.Payload {
	if len(body) == 0 {
		return nil
	}
	var p dispatch.Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil
	}
	return p
}

func (s *Server) observe(method, path string, code, size int) {
	msg := fmt.Sprintf("%s %s -> %d", method, path, code)
	switch code {
	case http.StatusOK:
		s.ok.Inc()
		s.log.Debug(msg)
	case http.StatusNotFound:
		s.notFound.Inc()
		s.log.Warn(msg)
	default:
		s.badRequest.Inc()
		s.log.Warn(msg)
	}
	s.responseBytes.Observe(float64(size))
}
