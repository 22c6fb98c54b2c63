package persist

import (
	"log/slog"
	"os"

	"github.com/viant/afs"
)

// Option configures a Service.
type Option func(s *settings)

type settings struct {
	fs       afs.Service
	logger   *slog.Logger
	fileMode os.FileMode
}

// WithFS sets the storage service used for reads.
func WithFS(fs afs.Service) Option {
	return func(s *settings) { s.fs = fs }
}

// WithLogger sets the logger; the default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithFileMode sets the permission bits of written files.
func WithFileMode(mode os.FileMode) Option {
	return func(s *settings) { s.fileMode = mode }
}
