package persist

import (
	"errors"
	"fmt"

	"github.com/viant/noted/codec"
)

// Error kinds, matched with errors.Is against any *Error.
var (
	ErrEncode                 = errors.New("persist: encode failed")
	ErrDecode                 = errors.New("persist: decode failed")
	ErrIO                     = errors.New("persist: i/o failed")
	ErrUnknownFormatExtension = errors.New("persist: unknown format extension")
)

// Error describes a failed persistence operation.
type Error struct {
	Op     string
	Path   string
	Format codec.Format
	Kind   error
	Err    error
}

func (e *Error) Error() string {
	if e.Format == codec.FormatUnknown {
		return fmt.Sprintf("%v: %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%v: %s %s (%s): %v", e.Kind, e.Op, e.Path, e.Format, e.Err)
}

// Unwrap exposes both the kind and the cause.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newError(op, path string, format codec.Format, kind, err error) *Error {
	return &Error{Op: op, Path: path, Format: format, Kind: kind, Err: err}
}
