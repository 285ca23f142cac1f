package search

import "fmt"

// ValidationError reports locally invalid search parameters. It is always
// raised before any network traffic happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TransportError wraps a failure to obtain any response from the backend:
// connection refused, DNS failure, timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError reports a non-2xx answer from the backend. Body carries the
// upstream error payload when one was returned.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("search API returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("search API returned %d", e.StatusCode)
}

// DecodeError reports a response body that does not match the expected
// Elasticsearch envelope. This usually means the upstream schema changed.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
