package note

import (
	"log/slog"

	"github.com/viant/noted/codec"
	"github.com/viant/noted/model"
	"github.com/viant/noted/service/persist"
	"github.com/viant/noted/tinyid"
)

// Option configures a Service.
type Option func(s *Service)

// WithFormat fixes the snapshot format; by default it follows the file
// extension.
func WithFormat(format codec.Format) Option {
	return func(s *Service) { s.format = format }
}

// WithGenerator sets the identifier generator.
func WithGenerator(generator *tinyid.Generator) Option {
	return func(s *Service) { s.ids = generator }
}

// WithPersistence sets the snapshot persistence service.
func WithPersistence(persistence *persist.Service[model.Snapshot]) Option {
	return func(s *Service) { s.persistence = persistence }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}
