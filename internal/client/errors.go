package client

import "fmt"

// StatusError reports a non-2xx response from the tracking server.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}
