package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// NewFunc returns a new random token. Override in tests for predictable names.
var NewFunc = func() string { return strings.ReplaceAll(uuid.New().String(), "-", "") }

// New returns a token safe to embed in a file name.
func New() string { return NewFunc() }
