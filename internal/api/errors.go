package api

import (
	"errors"
	"fmt"
)

// Sentinel failures the UI layers branch on. ErrUnauthenticated is raised
// before any request leaves the client; the rest are mapped from HTTP status
// codes on the way back.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
)

// StatusError carries a non-2xx response that is not one of the sentinel
// cases, with whatever detail the backend included.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Detail)
}
