package api

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)

// Error carries the server's status code and message. It unwraps to one of
// the sentinels above when the status maps to one.
type Error struct {
	Status  int
	Message string
	kind    error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.kind
}
