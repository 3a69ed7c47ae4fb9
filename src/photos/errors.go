package photos

import (
	"errors"
	"fmt"
)

// ErrRetrieval is wrapped by every failed API call.
var ErrRetrieval = errors.New("retrieval failed")

// RetrievalError reports a non-success response from the photo API.
type RetrievalError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *RetrievalError) Error() string {
	msg := fmt.Sprintf("unable to retrieve %s from api: status %d", e.Resource, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *RetrievalError) Unwrap() error {
	return ErrRetrieval
}
