package noted

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/noted/codec"
	"github.com/viant/noted/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the service configuration.
// Zero fields inherit the defaults from DefaultConfig when loaded with
// LoadConfig.
type Config struct {
	Store   StoreConfig   `json:"store" yaml:"store"`
	ID      IDConfig      `json:"id" yaml:"id"`
	Log     LogConfig     `json:"log" yaml:"log"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

// StoreConfig locates the snapshot file.
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
	// Format names the codec; empty selects it by file extension.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

type IDConfig struct {
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Path: "notes" + codec.Default.Extension()},
		ID:    IDConfig{MaxAttempts: 100},
		Log:   LogConfig{Level: "info", Format: string(logging.FormatText)},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Store.Path == "" {
		errs = append(errs, fmt.Errorf("store.path is required"))
	}
	if _, err := c.StoreFormat(); err != nil {
		errs = append(errs, fmt.Errorf("store.format: %w", err))
	}
	if c.ID.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("id.maxAttempts must be > 0"))
	}
	return errors.Join(errs...)
}

// StoreFormat resolves the configured format, falling back to the store path
// extension.
func (c *Config) StoreFormat() (codec.Format, error) {
	if c.Store.Format != "" {
		return codec.ParseFormat(c.Store.Format)
	}
	if c.Store.Path == "" {
		return codec.FormatUnknown, nil
	}
	return codec.FormatForPath(c.Store.Path)
}

// LoadConfig reads a YAML (or JSON) configuration document from URL on top of
// DefaultConfig. Unknown keys are rejected. options are passed to the storage
// service, e.g. an embed.FS for embed:// URLs.
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, url.Normalize(URL, file.Scheme), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err = decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
