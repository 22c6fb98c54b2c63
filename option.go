package noted

import (
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/noted/tinyid"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures a Service.
type Option func(s *Service)

// WithConfig sets the configuration; DefaultConfig is used otherwise.
func WithConfig(cfg *Config) Option {
	return func(s *Service) { s.config = cfg }
}

// WithLogger overrides the logger built from the log configuration.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithFS sets the storage service used to read snapshots.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithGenerator overrides the identifier generator.
func WithGenerator(generator *tinyid.Generator) Option {
	return func(s *Service) { s.ids = generator }
}

// WithTracing exports spans with the stdout exporter, or to outputFile when
// it is not empty.
func WithTracing(outputFile string) Option {
	return func(s *Service) {
		s.tracing = true
		s.tracingOutput = outputFile
	}
}

// WithTracingExporter exports spans with a custom exporter, e.g. OTLP.
func WithTracingExporter(exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracing = true
		s.tracingExporter = exporter
	}
}
