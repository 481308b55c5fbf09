package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServerError  = errors.New("server error")
	ErrUnexpected   = errors.New("unexpected response")
	ErrNoToken      = errors.New("no token set")
)

// ResponseError is a non-2xx response. Message is the text the server put
// into its JSON body, suitable for showing to the user.
type ResponseError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v (http %d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// UserMessage returns the server supplied message of err, or err's text
// when err did not come from a server response.
func UserMessage(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}
	return err.Error()
}
