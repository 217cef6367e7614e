package ingest

import (
	"errors"
	"fmt"
)

// ErrMalformedInput reports vendor input whose article body cannot be
// located. Converters fail fast with it instead of guessing past a
// missing body.
var ErrMalformedInput = errors.New("malformed input")

// FetchError wraps a failed retrieval of a remote document, either a
// transport error or a non-2xx response.
type FetchError struct {
	URL    string
	Status string // response status line, empty on transport errors
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
