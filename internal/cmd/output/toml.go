package output

import (
	"io"

	"github.com/BurntSushi/toml"
)

var _ Handler[any] = (*TOMLHandler[any])(nil)

// TOMLHandler writes TOML for both data and errors.
// Items must encode to a TOML table: a map with string keys or a struct.
type TOMLHandler[T any] struct {
	out io.Writer
}

func NewTOMLHandler[T any](w io.Writer) *TOMLHandler[T] {
	return &TOMLHandler[T]{out: w}
}

// Writer returns the underlying io.Writer where TOML will be written.
func (h *TOMLHandler[T]) Writer() io.Writer {
	return h.out
}

// HandleResult marshals the given item to TOML.
func (h *TOMLHandler[T]) HandleResult(item T) error {
	return toml.NewEncoder(h.out).Encode(item)
}

// HandleError marshals the given error string under an "error" key to TOML.
func (h *TOMLHandler[T]) HandleError(err error) error {
	return toml.NewEncoder(h.out).Encode(ErrorPayload{Error: err.Error()})
}
