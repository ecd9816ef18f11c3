package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is a Forward Email API client. It is safe for concurrent use; all
// requests share one connection pool, which is released by [Client.Close].
type Client struct {
	baseURL   string
	options   *Options
	transport *http.Transport
	client    *resty.Client

	// lifetime is cancelled by Close, aborting requests still in flight.
	lifetime  context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// apiRequest describes one call to the API.
type apiRequest struct {
	method     string
	path       string
	pathParams map[string]string
	query      queryParams
	body       any
}

var emptyObject = json.RawMessage("{}")

// New creates a client authenticating with apiKey. It returns an error of
// kind [KindConfig] if apiKey is empty.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &Error{Kind: KindConfig, Message: ErrMissingAPIKey.Error()}
	}

	options := newClientOptions()

	for _, opt := range opts {
		opt(options)
	}

	transport := newTransport(options)

	restyClient := resty.New().
		SetTransport(transport).
		SetBaseURL(options.baseURL).
		SetTimeout(options.timeout).
		SetRetryCount(0).
		SetHeaders(options.requestHeaders).
		SetHeader("User-Agent", options.userAgent).
		SetBasicAuth(apiKey, "").
		SetLogger(options.requestLogger)

	lifetime, cancel := context.WithCancel(context.Background())

	return &Client{
		baseURL:   options.baseURL,
		options:   options,
		transport: transport,
		client:    restyClient,
		lifetime:  lifetime,
		cancel:    cancel,
	}, nil
}

// BaseURL returns the effective API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the effective per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.options.timeout
}

// Close destroys the connection pool. Requests still in flight are aborted
// and fail with an error matching [ErrClientClosed], as does any later
// request. It is safe to call more than once and always returns nil.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.cancel()
		c.transport.CloseIdleConnections()
	})
	return nil
}

// do executes req and returns the JSON response body. An empty body is
// returned as an empty JSON object.
func (c *Client) do(ctx context.Context, req apiRequest) (json.RawMessage, error) {
	if c.lifetime.Err() != nil {
		return nil, networkError(ErrClientClosed)
	}

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.lifetime, cancel)
	defer stop()

	r := c.client.R().SetContext(reqCtx)

	if len(req.pathParams) > 0 {
		r.SetPathParams(req.pathParams)
	}

	if values := req.query.values(); values != nil {
		r.SetQueryParamsFromValues(values)
	}

	if req.body != nil {
		r.SetBody(req.body)
	}

	start := time.Now()

	resp, err := r.Execute(req.method, req.path)
	if err != nil {
		c.options.requestLogger.Errorf("%s %s failed after %s: %v", req.method, req.path, time.Since(start), err)

		if c.lifetime.Err() != nil && ctx.Err() == nil {
			return nil, networkError(fmt.Errorf("%w: %w", ErrClientClosed, err))
		}
		return nil, classifyTransportError(err, effectiveTimeout(ctx, c.options.timeout, start))
	}

	c.options.requestLogger.Debugf("%s %s -> %d (%s)", req.method, resp.Request.URL, resp.StatusCode(), time.Since(start))

	return parseResponse(resp.StatusCode(), resp.Body())
}

// effectiveTimeout is the limit that applied to a request started at start:
// the client timeout, or the caller's deadline when that came first.
func effectiveTimeout(ctx context.Context, timeout time.Duration, start time.Time) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return timeout
	}
	if remaining := deadline.Sub(start).Round(time.Millisecond); remaining < timeout {
		return max(remaining, 0)
	}
	return timeout
}

// parseResponse classifies a completed response. Status codes >= 400 become
// [KindHTTP] errors whether or not the body is JSON; a success response
// whose body is not JSON is a [KindParse] error.
func parseResponse(statusCode int, body []byte) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = emptyObject
	}

	if statusCode >= http.StatusBadRequest {
		var parsed any
		if err := json.Unmarshal(body, &parsed); err != nil {
			parsed = nil
		}
		return nil, httpError(statusCode, parsed)
	}

	if !json.Valid(body) {
		var v any
		return nil, parseError(json.Unmarshal(body, &v))
	}

	return json.RawMessage(body), nil
}

// decode unmarshals a response body into out. An empty object leaves out at
// its zero value so that list endpoints tolerate an empty body.
func decode(raw json.RawMessage, out any) error {
	if bytes.Equal(raw, emptyObject) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return parseError(err)
	}
	return nil
}
