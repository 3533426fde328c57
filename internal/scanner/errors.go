package scanner

import "fmt"

// RequestError reports a request that never produced a response
// (connection refused, DNS failure, timeout).
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("execute request %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error { return e.Err }

// StatusError reports a response with a non-success HTTP status code.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.URL, e.Code)
}

// DecodeError reports a response body that is not valid JSON of the
// expected shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *DecodeError) Unwrap() error { return e.Err }
