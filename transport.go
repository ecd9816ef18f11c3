package client

import (
	"net"
	"net/http"
	"time"
)

// newTransport builds the connection pool shared by every request of a
// [Client]. MaxConnsPerHost makes excess concurrent requests wait for a
// connection instead of failing.
func newTransport(o *Options) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   o.timeout,
		KeepAlive: 30 * time.Second,
	}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxConnsPerHost:       o.maxConnections,
		MaxIdleConns:          o.maxIdleConnections,
		MaxIdleConnsPerHost:   o.maxIdleConnections,
		IdleConnTimeout:       o.idleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
