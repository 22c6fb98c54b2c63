package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for a Format outside the known set.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrUnknownExtension is returned when a file extension maps to no Format.
	ErrUnknownExtension = errors.New("codec: unknown format extension")
)

// Format identifies a wire encoding.
type Format int

const (
	// FormatUnknown is the zero value and is never a valid encoding.
	FormatUnknown Format = iota
	// FormatMsgPack is a compact binary self-describing encoding; the default.
	FormatMsgPack
	// FormatCBOR is a compact binary self-describing encoding (RFC 8949).
	FormatCBOR
	// FormatJSON is a human-readable text encoding.
	FormatJSON
	// FormatYAML is a human-readable text encoding.
	FormatYAML
)

// Default is the format used when none is configured.
const Default = FormatMsgPack

var formatNames = map[Format]string{
	FormatMsgPack: "msgpack",
	FormatCBOR:    "cbor",
	FormatJSON:    "json",
	FormatYAML:    "yaml",
}

// extensions lists file extensions per format; the first one is canonical.
var extensions = map[Format][]string{
	FormatMsgPack: {".msgpack", ".mpk"},
	FormatCBOR:    {".cbor"},
	FormatJSON:    {".json"},
	FormatYAML:    {".yaml", ".yml"},
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatMsgPack, FormatCBOR, FormatJSON, FormatYAML}
}

// String returns the format name.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	_, ok := formatNames[f]
	return ok
}

// IsBinary reports whether f produces non-text output.
func (f Format) IsBinary() bool {
	return f == FormatMsgPack || f == FormatCBOR
}

// Extension returns the canonical file extension, including the dot.
func (f Format) Extension() string {
	if exts := extensions[f]; len(exts) > 0 {
		return exts[0]
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler so formats read naturally in
// configuration files.
func (f Format) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormat resolves a format name. Matching is case-insensitive and also
// accepts extensions such as ".yml" or "mpk".
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for f, formatName := range formatNames {
		if normalized == formatName {
			return f, nil
		}
	}
	if normalized != "" && !strings.HasPrefix(normalized, ".") {
		normalized = "." + normalized
	}
	if f, ok := formatForExtension(normalized); ok {
		return f, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatForPath picks a format from the file extension of path.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatForExtension(ext); ok {
		return f, nil
	}
	if ext == "" {
		return FormatUnknown, fmt.Errorf("%w: %s has no extension", ErrUnknownExtension, path)
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
}

func formatForExtension(ext string) (Format, bool) {
	for f, exts := range extensions {
		for _, candidate := range exts {
			if candidate == ext {
				return f, true
			}
		}
	}
	return FormatUnknown, false
}
