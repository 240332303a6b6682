package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork matches every [*NetworkError].
	ErrNetwork = errors.New("network error")
	// ErrServerReported matches every [*EnvelopeError].
	ErrServerReported = errors.New("server reported an error")

	ErrInvalidAddress  = errors.New("invalid server address")
	ErrInvalidFileName = errors.New("invalid file name")
)

// EnvelopeError is a failure reported by the server in the error envelope.
// Message is the server string, unchanged.
type EnvelopeError struct {
	StatusCode int
	Message    string
}

func (e *EnvelopeError) Error() string {
	return e.Message
}

func (e *EnvelopeError) Is(target error) bool {
	return target == ErrServerReported
}

// NetworkError is a failure to obtain a usable answer from the server.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
