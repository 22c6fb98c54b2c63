package noted

import (
	"context"
	"errors"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/noted/codec"
	"github.com/viant/noted/internal/logging"
	"github.com/viant/noted/model"
	"github.com/viant/noted/service/dao/note"
	"github.com/viant/noted/service/persist"
	"github.com/viant/noted/tinyid"
	"github.com/viant/noted/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serviceName = "noted"
	// Version is reported as the tracing service version.
	Version = "0.1.0"
)

// Service represents the noted core.
type Service struct {
	config          *Config
	logger          *slog.Logger
	fs              afs.Service
	ids             *tinyid.Generator
	persistence     *persist.Service[model.Snapshot]
	notes           *note.Service
	tracing         bool
	tracingOutput   string
	tracingExporter sdktrace.SpanExporter
	shutdown        tracing.Shutdown
}

// Notes returns the note repository.
func (s *Service) Notes() *note.Service { return s.notes }

// IDs returns the identifier generator.
func (s *Service) IDs() *tinyid.Generator { return s.ids }

// Persistence returns the snapshot persistence service.
func (s *Service) Persistence() *persist.Service[model.Snapshot] { return s.persistence }

// Config returns the effective configuration.
func (s *Service) Config() *Config { return s.config }

// Logger returns the service logger.
func (s *Service) Logger() *slog.Logger { return s.logger }

// Open loads the snapshot; a missing file starts an empty collection.
func (s *Service) Open(ctx context.Context) error {
	return s.notes.Open(ctx)
}

// Close flushes the notes and stops tracing.
func (s *Service) Close(ctx context.Context) error {
	err := s.notes.Flush(ctx)
	if s.shutdown != nil {
		err = errors.Join(err, s.shutdown(ctx))
		s.shutdown = nil
	}
	return err
}

// Convert flushes the notes, then rewrites the snapshot in format to. The
// previous bytes are kept next to it with persist.BackupSuffix. The note
// repository returned by Notes stays the same and later flushes use the new
// format.
func (s *Service) Convert(ctx context.Context, to codec.Format) error {
	if err := s.notes.Convert(ctx, to); err != nil {
		return err
	}
	s.config.Store.Format = to.String()
	return nil
}

func (s *Service) newNotes(format codec.Format) *note.Service {
	return note.New(s.config.Store.Path,
		note.WithFormat(format),
		note.WithGenerator(s.ids),
		note.WithPersistence(s.persistence),
		note.WithLogger(s.logger))
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	cfg := *s.config
	s.config = &cfg
	if err := s.config.Validate(); err != nil {
		return err
	}
	format, _ := s.config.StoreFormat()
	if s.logger == nil {
		s.logger = logging.New(logging.Config{
			Level:  logging.ParseLevel(s.config.Log.Level),
			Format: logging.ParseFormat(s.config.Log.Format),
		})
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.ids == nil {
		s.ids = tinyid.NewGenerator(tinyid.WithMaxAttempts(s.config.ID.MaxAttempts))
	}
	s.persistence = persist.New[model.Snapshot](persist.WithFS(s.fs), persist.WithLogger(s.logger))
	s.notes = s.newNotes(format)
	return s.initTracing()
}

func (s *Service) initTracing() (err error) {
	if !s.tracing && !s.config.Tracing.Enabled {
		return nil
	}
	if s.tracingExporter != nil {
		s.shutdown, err = tracing.InitWithExporter(serviceName, Version, s.tracingExporter)
		return err
	}
	output := s.tracingOutput
	if output == "" {
		output = s.config.Tracing.Output
	}
	s.shutdown, err = tracing.Init(serviceName, Version, output)
	return err
}

// New creates a Service.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
