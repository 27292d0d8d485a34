package service

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage is shown when a failure carries no description.
const UnknownErrorMessage = "An unknown error occurred"

// ErrNotFound is returned by commands when a retrieval succeeded without a record.
var ErrNotFound = errors.New("Todo not found")

// HTTPError reports a non-success response status.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d", e.Status)
}

// NetworkError reports a transport failure: DNS, refused connection, timeout,
// aborted request or an unreadable body.
type NetworkError struct {
	Description string
	Err         error
}

func (e *NetworkError) Error() string {
	if e.Description == "" {
		return UnknownErrorMessage
	}
	return e.Description
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsBackend reports whether err came from the remote source rather than the caller.
func IsBackend(err error) bool {
	var he *HTTPError
	var ne *NetworkError
	return errors.As(err, &he) || errors.As(err, &ne)
}
