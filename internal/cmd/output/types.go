package output

import "io"

type Handler[T any] interface {
	// Writer returns the io.Writer this Handler will write to.
	Writer() io.Writer

	// HandleResult renders a single item.
	HandleResult(item T) error

	// HandleError renders the error.
	HandleError(err error) error
}

type Printer[T any] interface {
	// Item prints one element as human-readable text.
	Item(w io.Writer, elem T) error
}

// ErrorPayload represents an error message rendered in a structured format.
// The payload is serialized with the key "error".
type ErrorPayload struct {
	Error string `json:"error" yaml:"error" toml:"error"`
}
