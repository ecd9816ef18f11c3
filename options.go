package client

import (
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Forward Email API endpoint used when no
	// override is supplied via [WithBaseURL].
	DefaultBaseURL = "https://api.forwardemail.net"

	// DefaultTimeout bounds each request when [WithTimeout] is not used.
	DefaultTimeout = 30 * time.Second

	// Version is reported in the default User-Agent header.
	Version = "1.0.0"
)

type Option func(*Options)

type Options struct {
	baseURL            string
	timeout            time.Duration
	maxConnections     int
	maxIdleConnections int
	idleConnTimeout    time.Duration
	userAgent          string
	requestLogger      RequestLogger
	requestHeaders     map[string]string
}

func newClientOptions() *Options {
	return &Options{
		baseURL:            DefaultBaseURL,
		timeout:            DefaultTimeout,
		maxConnections:     50,
		maxIdleConnections: 10,
		idleConnTimeout:    90 * time.Second,
		userAgent:          "forwardemail-go/" + Version,
		requestLogger:      &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithBaseURL overrides the API endpoint. A trailing slash is trimmed so
// that request paths can be appended directly.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxConnections caps the number of concurrent connections to the API
// host. Requests beyond the cap wait for a free connection.
func WithMaxConnections(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxConnections = n
		}
	}
}

// WithMaxIdleConnections caps the number of keep-alive connections kept in
// the pool between requests.
func WithMaxIdleConnections(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxIdleConnections = n
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		userAgent = strings.TrimSpace(userAgent)
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every request. Headers the client
// manages itself (Content-Type, Accept, Authorization, User-Agent) are
// ignored.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isReservedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

func isReservedHeader(header string) bool {
	for _, reserved := range []string{"Content-Type", "Accept", "Authorization", "User-Agent"} {
		if strings.EqualFold(header, reserved) {
			return true
		}
	}
	return false
}
