// Package client provides an HTTP client for the Forward Email API.
//
// The client wraps [github.com/go-resty/resty/v2] with a persistent
// connection pool, HTTP Basic authentication and a single error type.
//
// # Basic Usage
//
//	c, err := client.New(os.Getenv("FORWARD_EMAIL_API_KEY"),
//	    client.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	email, err := c.SendEmail(ctx, &client.EmailOptions{
//	    From:    "hello@example.com",
//	    To:      []string{"user@example.org"},
//	    Subject: "Hello",
//	    Text:    "Hello world",
//	})
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained. The
// only required input is the API key; [New] fails with [ErrMissingAPIKey]
// when it is empty.
//
// # Connection Pooling
//
// Each [Client] owns one [net/http.Transport]. Connections are kept alive
// and reused; at most 50 are open to the API at once (see
// [WithMaxConnections]) and excess requests wait for a free connection.
// Call [Client.Close] when the client is no longer needed. Close aborts
// requests still in flight, and requests on a closed client fail with
// [ErrClientClosed].
//
// # Errors
//
// Every failure is an [*Error] whose Kind tells validation failures,
// HTTP error responses, transport failures, timeouts and unparsable
// responses apart. Requests are never retried.
//
//	var apiErr *client.Error
//	if errors.As(err, &apiErr) && apiErr.Kind == client.KindHTTP {
//	    log.Printf("status %d: %s", apiErr.StatusCode, apiErr.Message)
//	}
//
// Common conditions can also be matched with errors.Is, for example
// [ErrNotFound] or [ErrTimeout].
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [SlogLogger]. The default
// [NoopLogger] discards all log output.
package client
