package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RequestIDHeader is the header used to correlate client calls with backend
// request logs.
const RequestIDHeader = "X-Request-ID"

// Doer abstracts the HTTP transport so tests can run the client against an
// in-process backend without opening a socket.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configure a Client.
type Options struct {
	// HTTPClient overrides the default transport. Leave nil for a plain
	// http.Client with Timeout applied.
	HTTPClient Doer
	Timeout    time.Duration
	// Trace wraps the default transport with otelhttp instrumentation.
	// Ignored when HTTPClient is set.
	Trace bool
}

// Client is the single point of truth for reading and mutating case document
// records against the backend REST surface. It owns a tag-invalidated cache of
// read results, so a caller never observes a record older than its own most
// recent successful mutation.
type Client struct {
	baseURL string
	http    Doer
	cache   *tagCache
}

// New creates a repository client for the backend at baseURL.
func New(baseURL string, opts Options) *Client {
	doer := opts.HTTPClient
	if doer == nil {
		var rt http.RoundTripper = http.DefaultTransport
		if opts.Trace {
			rt = otelhttp.NewTransport(rt)
		}
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		doer = &http.Client{Transport: rt, Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		cache:   newTagCache(),
	}
}

// errorEnvelope mirrors the backend's standardized error response body.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do issues the request and decodes a 2xx response body into out (when out is
// non-nil). Non-2xx responses are mapped to the tagged client error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return networkError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return serverError(resp.StatusCode, "BAD_RESPONSE", fmt.Sprintf("decode response: %v", err))
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return NewValidationError(fmt.Sprintf("encode request: %v", err))
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

func decodeError(resp *http.Response) *Error {
	var env errorEnvelope
	code, message := "", http.StatusText(resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error.Message != "" {
		code, message = env.Error.Code, env.Error.Message
	}
	if resp.StatusCode == http.StatusNotFound {
		return notFoundError(code, message)
	}
	// Any other rejection, 4xx included, is the backend refusing the request.
	// KindValidation is reserved for local preconditions that never went out.
	return serverError(resp.StatusCode, code, message)
}
