package llm

import "errors"

// ErrorCode classifies completion client errors.
type ErrorCode string

const (
	// ErrCodeConfig indicates invalid client configuration.
	ErrCodeConfig ErrorCode = "config"
	// ErrCodeConnectivity indicates the endpoint could not be reached
	// within the configured attempts.
	ErrCodeConnectivity ErrorCode = "connectivity"
	// ErrCodeResponse indicates the endpoint answered with an error payload
	// or a shape that cannot be mapped back to the prompt batch.
	ErrCodeResponse ErrorCode = "response"
)

// Error is a structured completion client error.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message is the complete caller-facing description.
	Message string
	// Payload is the serialized response payload, when one was parsed.
	Payload string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error.
func NewConfigError(msg string) *Error {
	return &Error{Code: ErrCodeConfig, Message: msg}
}

// NewConnectivityError creates a connectivity error wrapping the transport
// failure of the final attempt.
func NewConnectivityError(msg string, err error) *Error {
	return &Error{Code: ErrCodeConnectivity, Message: msg, Err: err}
}

// NewResponseError creates a response error. payload carries the serialized
// response body when one was parsed.
func NewResponseError(msg, payload string) *Error {
	return &Error{Code: ErrCodeResponse, Message: msg, Payload: payload}
}

// IsConfig checks if an error is a configuration error.
func IsConfig(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConfig
}

// IsConnectivity checks if an error is a connectivity error.
func IsConnectivity(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnectivity
}

// IsResponse checks if an error is a response error.
func IsResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeResponse
}
