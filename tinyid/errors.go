package tinyid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when a string or byte slice is not a valid
	// ID encoding. Callers typically re-prompt or reject the input.
	ErrInvalidFormat = errors.New("tinyid: invalid id format")

	// ErrExhaustedIDSpace is returned by GenerateUnique when no free ID was
	// found within the attempt bound. It signals a pathologically large
	// collection or a broken random source.
	ErrExhaustedIDSpace = errors.New("tinyid: exhausted id space")
)

// ParseError describes why an input could not be decoded into an ID.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tinyid: invalid id %q: %s", e.Input, e.Reason)
}

// Is reports ErrInvalidFormat as the error kind.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// maxEchoedInput bounds how much of an arbitrary input is kept in a ParseError.
const maxEchoedInput = 32

func newParseError(input, reason string) *ParseError {
	if len(input) > maxEchoedInput {
		input = input[:maxEchoedInput] + "..."
	}
	return &ParseError{Input: input, Reason: reason}
}
