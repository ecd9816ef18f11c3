package client

import (
	"context"
	"errors"
	"net"
	"time"
)

// classifyTransportError maps an error returned by the HTTP transport to a
// [KindTimeout] or [KindNetwork] [*Error]. It is only called when no
// response was received.
func classifyTransportError(err error, timeout time.Duration) *Error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return timeoutError(timeout, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutError(timeout, err)
	}

	// Connection refused, reset, DNS failures and caller cancellation.
	return networkError(err)
}
