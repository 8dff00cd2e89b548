package client

import (
	"encoding/json"
	"fmt"

	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/response"
)

// TransportError is a network failure (StatusCode 0) or a non-2xx response.
// It matches dictionary.ErrTransport with errors.Is.
type TransportError struct {
	StatusCode int
	Message    string
	err        error
}

func newHTTPError(statusCode int, body []byte) *TransportError {
	e := &TransportError{StatusCode: statusCode}

	apiErr := &response.Error{}
	if json.Unmarshal(body, apiErr) == nil {
		e.Message = apiErr.Message
	}

	return e
}

func newNetworkError(err error) *TransportError {
	return &TransportError{err: err}
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", dictionary.ErrTransport, e.err)
	}

	if e.Message == "" {
		return fmt.Sprintf("%s: server responded with a %d status code", dictionary.ErrTransport, e.StatusCode)
	}

	return fmt.Sprintf(
		"%s: server responded with a %d status code (message: %s)",
		dictionary.ErrTransport,
		e.StatusCode,
		e.Message,
	)
}

func (e *TransportError) Unwrap() error {
	return e.err
}

func (e *TransportError) Is(target error) bool {
	return target == dictionary.ErrTransport
}
