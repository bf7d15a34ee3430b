package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/neffpaving/site-checks/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ErrUnsupportedMethod is returned for any HTTP method other than GET, POST, PUT, or DELETE.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// Session holds what every request to the backend shares: the base URL and, after a successful
// login, the bearer token. A Session is not safe for concurrent use.
type Session struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Request describes one call to the backend. Headers, if non-nil, replace the default headers,
// except that a JSON body always gets a Content-Type unless Headers sets one. A nil Body sends
// no body at all. The Authorization header is added regardless.
type Request struct {
	Method   string
	Endpoint string
	Body     interface{}
	Headers  http.Header
}

// Response is what came back from the backend. Body is the decoded JSON body, or an object
// of the form {"text": "..."} if the body was not valid JSON.
type Response struct {
	StatusCode int
	Body       ldvalue.Value
	Raw        []byte
}

// NewSession creates a Session for the backend at baseURL. A zero timeout leaves the HTTP
// transport's defaults in place.
func NewSession(baseURL string, timeout time.Duration) *Session {
	return &Session{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *Session) BaseURL() string {
	return s.baseURL
}

func (s *Session) HasToken() bool {
	return s.token != ""
}

// SetToken stores the bearer token that will be sent with every subsequent request.
func (s *Session) SetToken(token string) {
	s.token = token
}

// Do sends a request and reads the whole response. Any error means no response was obtained.
func (s *Session) Do(r Request, logger framework.Logger) (Response, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}

	req, body, err := s.newHTTPRequest(r)
	if err != nil {
		return Response{}, err
	}
	logger.Printf("Request: %s", CurlCommand(req, body))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("error reading response body: %w", err)
	}
	logger.Printf("Response: %d %s", resp.StatusCode, string(data))

	return Response{
		StatusCode: resp.StatusCode,
		Body:       ParseBody(data),
		Raw:        data,
	}, nil
}

func (s *Session) newHTTPRequest(r Request) (*http.Request, []byte, error) {
	method := strings.ToUpper(r.Method)
	var body []byte
	switch method {
	case http.MethodGet, http.MethodDelete:
	case http.MethodPost, http.MethodPut:
		if r.Body == nil {
			break
		}
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("can't encode request body: %w", err)
		}
		body = data
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, r.Method)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, s.baseURL+r.Endpoint, reader)
	if err != nil {
		return nil, nil, err
	}

	if r.Headers == nil {
		req.Header.Set("Content-Type", "application/json")
	} else {
		req.Header = r.Headers.Clone()
		if body != nil && req.Header.Get("Content-Type") == "" {
			req.Header.Set("Content-Type", "application/json")
		}
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	return req, body, nil
}

// ParseBody decodes a response body as JSON. A body that is not valid JSON is kept as
// {"text": "<body>"}.
func ParseBody(data []byte) ldvalue.Value {
	var value ldvalue.Value
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &value); err == nil {
			return value
		}
	}
	return ldvalue.ObjectBuild().Set("text", ldvalue.String(string(data))).Build()
}
