package persist

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// location is a path resolved once for every operation. local is empty for
// URLs outside the local filesystem.
type location struct {
	URL   string
	local string
}

// resolve treats only scheme://... inputs as URLs; anything else is a local
// path, made absolute so reads and writes address the same file.
func resolve(path string) (*location, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}
	if hasScheme(path) {
		if scheme := url.Scheme(path, file.Scheme); scheme != file.Scheme {
			return &location{URL: url.Normalize(path, file.Scheme)}, nil
		}
		path = strings.TrimPrefix(path, file.Scheme+"://")
		if path == "" {
			return nil, fmt.Errorf("empty path")
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &location{URL: file.Scheme + "://" + filepath.ToSlash(abs), local: abs}, nil
}

// localPath returns the filesystem path needed by the atomic writer.
func (l *location) localPath() (string, error) {
	if l.local == "" {
		return "", fmt.Errorf("atomic save needs a local path, got %s://", url.Scheme(l.URL, file.Scheme))
	}
	return l.local, nil
}

func hasScheme(path string) bool {
	index := strings.Index(path, "://")
	if index <= 0 {
		return false
	}
	for i, r := range path[:index] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
