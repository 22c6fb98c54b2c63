// Package tracing wraps OpenTelemetry so persistence and repository calls can
// open spans without importing the SDK. Spans are no-ops until Init or
// InitWithExporter installs a provider.
package tracing
