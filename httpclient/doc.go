// Package httpclient provides a configurable HTTP client with built-in
// authentication, TLS, retry, and rate limiting.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "/v1/things",
//	    Body:   map[string]any{"name": "example"},
//	})
//
// # Error Handling
//
// Transport failures return a typed *Error classified as connection or
// timeout. Non-2xx statuses return BOTH the *Response and a classified
// *Error: the caller decides whether the payload or the status wins.
//
//	resp, err := client.Do(ctx, req)
//	if httpclient.IsConnection(err) {
//	    // no response was received
//	}
//	if resp != nil && resp.IsError() {
//	    // inspect resp.Body regardless of err
//	}
//
// # Retry
//
//	cfg := httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Retry:   httpclient.DefaultRetryConfig(),
//	}
//
// The retry predicate defaults to transport-level failures only; callers
// with stricter policies supply their own RetryIf.
package httpclient
