package persist

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/noted/codec"
	"github.com/viant/noted/internal/logging"
	"github.com/viant/noted/tracing"
)

const (
	opSave    = "save"
	opSaveNew = "save-new"
	opLoad    = "load"
	opConvert = "convert"
)

// BackupSuffix is appended to the path of the copy Convert keeps.
const BackupSuffix = ".bak"

// Service persists values of type T. It holds no per-path state and does not
// serialise concurrent writers of the same path.
type Service[T any] struct {
	settings
}

// New creates a Service.
func New[T any](options ...Option) *Service[T] {
	s := &Service[T]{settings: settings{fileMode: file.DefaultFileOsMode}}
	for _, opt := range options {
		opt(&s.settings)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}
	return s
}

// Save atomically replaces the file at path with value encoded as format.
// The parent directory must exist.
func (s *Service[T]) Save(ctx context.Context, value T, path string, format codec.Format) error {
	return s.save(ctx, opSave, value, path, format, true)
}

// SaveNew is Save for a path that must not exist yet.
func (s *Service[T]) SaveNew(ctx context.Context, value T, path string, format codec.Format) error {
	return s.save(ctx, opSaveNew, value, path, format, false)
}

// SaveAuto saves with the format implied by the extension of path.
func (s *Service[T]) SaveAuto(ctx context.Context, value T, path string) error {
	format, err := codec.FormatForPath(path)
	if err != nil {
		return newError(opSave, path, codec.FormatUnknown, ErrUnknownFormatExtension, err)
	}
	return s.Save(ctx, value, path, format)
}

func (s *Service[T]) save(ctx context.Context, op string, value T, path string, format codec.Format, replace bool) (err error) {
	ctx, span := tracing.StartSpan(ctx, "persist."+op, tracing.KindInternal)
	span.WithAttributes(map[string]string{"path": path, "format": format.String()})
	defer func() { tracing.EndSpan(span, err) }()

	if err = ctx.Err(); err != nil {
		return newError(op, path, format, ErrIO, err)
	}
	loc, err := resolve(path)
	if err != nil {
		return newError(op, path, format, ErrIO, err)
	}
	localPath, err := loc.localPath()
	if err != nil {
		return newError(op, path, format, ErrIO, err)
	}
	data, err := codec.Marshal(format, value)
	if err != nil {
		return newError(op, path, format, ErrEncode, err)
	}
	if err = writeFile(localPath, data, s.fileMode, replace); err != nil {
		return newError(op, path, format, ErrIO, err)
	}
	s.logger.DebugContext(ctx, "saved", "path", path, "format", format.String(), "bytes", len(data))
	return nil
}

// Load decodes the file at path as format into a fresh T. On failure the zero
// value is returned. A missing file yields an ErrIO error matching
// fs.ErrNotExist.
func (s *Service[T]) Load(ctx context.Context, path string, format codec.Format) (value T, err error) {
	ctx, span := tracing.StartSpan(ctx, "persist."+opLoad, tracing.KindInternal)
	span.WithAttributes(map[string]string{"path": path, "format": format.String()})
	defer func() { tracing.EndSpan(span, err) }()

	var zero T
	if !format.IsValid() {
		return zero, newError(opLoad, path, format, ErrDecode, fmt.Errorf("%w: %d", codec.ErrUnsupportedFormat, int(format)))
	}
	if err = ctx.Err(); err != nil {
		return zero, newError(opLoad, path, format, ErrIO, err)
	}
	loc, err := resolve(path)
	if err != nil {
		return zero, newError(opLoad, path, format, ErrIO, err)
	}
	data, err := s.read(ctx, loc)
	if err != nil {
		return zero, newError(opLoad, path, format, ErrIO, err)
	}
	if err = codec.Unmarshal(format, data, &value); err != nil {
		return zero, newError(opLoad, path, format, ErrDecode, err)
	}
	s.logger.DebugContext(ctx, "loaded", "path", path, "format", format.String(), "bytes", len(data))
	return value, nil
}

// LoadAuto loads with the format implied by the extension of path.
func (s *Service[T]) LoadAuto(ctx context.Context, path string) (T, error) {
	format, err := codec.FormatForPath(path)
	if err != nil {
		var zero T
		return zero, newError(opLoad, path, codec.FormatUnknown, ErrUnknownFormatExtension, err)
	}
	return s.Load(ctx, path, format)
}

// Convert rewrites the file at path from one format to another, keeping the
// original bytes at path+BackupSuffix.
func (s *Service[T]) Convert(ctx context.Context, path string, from, to codec.Format) (err error) {
	ctx, span := tracing.StartSpan(ctx, "persist."+opConvert, tracing.KindInternal)
	span.WithAttributes(map[string]string{"path": path, "from": from.String(), "to": to.String()})
	defer func() { tracing.EndSpan(span, err) }()

	loc, err := resolve(path)
	if err != nil {
		return newError(opConvert, path, from, ErrIO, err)
	}
	if err = s.fs.Copy(ctx, loc.URL, loc.URL+BackupSuffix); err != nil {
		return newError(opConvert, path, from, ErrIO, err)
	}
	value, err := s.Load(ctx, path, from)
	if err != nil {
		return err
	}
	if err = s.Save(ctx, value, path, to); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "converted", "path", path, "from", from.String(), "to", to.String())
	return nil
}

func (s *Service[T]) read(ctx context.Context, loc *location) ([]byte, error) {
	exists, err := s.fs.Exists(ctx, loc.URL)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, loc.URL)
	}
	return s.fs.DownloadWithURL(ctx, loc.URL)
}
