package note

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/viant/noted/codec"
	"github.com/viant/noted/internal/clock"
	"github.com/viant/noted/internal/logging"
	"github.com/viant/noted/model"
	"github.com/viant/noted/service/dao"
	"github.com/viant/noted/service/dao/store"
	"github.com/viant/noted/service/persist"
	"github.com/viant/noted/tinyid"
)

// ErrUnsupportedVersion is returned by Open for snapshots written by a newer
// layout.
var ErrUnsupportedVersion = errors.New("note: unsupported snapshot version")

// Service keeps notes in memory keyed by TinyId and snapshots them to a single
// file. Open and Flush are serialised, so one Service owns its file.
type Service struct {
	path        string
	format      codec.Format
	ids         *tinyid.Generator
	persistence *persist.Service[model.Snapshot]
	logger      *slog.Logger
	notes       *store.MemoryStore[tinyid.ID, model.Note]
	mux         sync.Mutex
}

var _ dao.Service[tinyid.ID, model.Note] = (*Service)(nil)

// Create stores a new note under a freshly generated ID.
func (s *Service) Create(ctx context.Context, title, body string) (*model.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("note: title is required")
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	id, err := s.ids.GenerateUnique(s.notes)
	if err != nil {
		return nil, err
	}
	now := clock.Now()
	created := &model.Note{ID: id, Title: title, Body: body, CreatedAt: now, UpdatedAt: now}
	if err = s.notes.Insert(created); err != nil {
		return nil, err
	}
	return created.Clone(), nil
}

// Save stores a copy of n stamped with the current time.
func (s *Service) Save(ctx context.Context, n *model.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n == nil {
		return dao.ErrNilEntity
	}
	if n.ID.IsNil() {
		return dao.ErrInvalidID
	}
	stored := n.Clone()
	stored.UpdatedAt = clock.Now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = stored.UpdatedAt
	}
	return s.notes.Save(ctx, stored)
}

// Load returns a copy of the note with id.
func (s *Service) Load(ctx context.Context, id tinyid.ID) (*model.Note, error) {
	if id.IsNil() {
		return nil, dao.ErrInvalidID
	}
	n, err := s.notes.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, id)
	}
	return n.Clone(), nil
}

// Delete removes the note with id.
func (s *Service) Delete(ctx context.Context, id tinyid.ID) error {
	if id.IsNil() {
		return dao.ErrInvalidID
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %s", err, id)
	}
	return nil
}

// List returns copies of all notes in ID order.
func (s *Service) List(_ context.Context) ([]*model.Note, error) {
	values := s.notes.Values()
	out := make([]*model.Note, len(values))
	for i, n := range values {
		out[i] = n.Clone()
	}
	return out, nil
}

// Contains reports whether id is taken; it lets the Service act as a
// tinyid.Lookup.
func (s *Service) Contains(id tinyid.ID) bool {
	return s.notes.Contains(id)
}

// Len returns the number of notes.
func (s *Service) Len() int {
	return s.notes.Len()
}

// Path returns the snapshot location.
func (s *Service) Path() string {
	return s.path
}

// Open replaces the in-memory notes with the snapshot on disk. A missing file
// yields an empty collection.
func (s *Service) Open(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	snapshot, err := s.load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.InfoContext(ctx, "no snapshot, starting empty", "path", s.path)
		return s.notes.Replace(nil)
	}
	if err != nil {
		return err
	}
	if snapshot.Version > model.SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, snapshot.Version)
	}
	for _, n := range snapshot.Notes {
		if n == nil {
			return fmt.Errorf("%s: %w", s.path, dao.ErrNilEntity)
		}
		if n.ID.IsNil() {
			return fmt.Errorf("%s: %w: %s", s.path, dao.ErrInvalidID, n.ID)
		}
		n.Normalize()
	}
	if err = s.notes.Replace(snapshot.Notes); err != nil {
		return fmt.Errorf("%s: %w", s.path, err)
	}
	s.logger.InfoContext(ctx, "snapshot opened", "path", s.path, "notes", len(snapshot.Notes))
	return nil
}

// Flush writes all notes to the snapshot file.
func (s *Service) Flush(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.flush(ctx)
}

// Convert flushes the notes, rewrites the snapshot in format to and makes it
// the format of later flushes. The previous bytes are kept next to the
// snapshot with persist.BackupSuffix.
func (s *Service) Convert(ctx context.Context, to codec.Format) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %d", codec.ErrUnsupportedFormat, int(to))
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	from, err := s.effectiveFormat()
	if err != nil {
		return err
	}
	if err = s.flush(ctx); err != nil {
		return err
	}
	if err = s.persistence.Convert(ctx, s.path, from, to); err != nil {
		return err
	}
	s.format = to
	s.logger.InfoContext(ctx, "snapshot converted", "path", s.path, "from", from.String(), "to", to.String())
	return nil
}

// Format returns the snapshot format, resolving the file extension when none
// was set.
func (s *Service) Format() (codec.Format, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.effectiveFormat()
}

func (s *Service) effectiveFormat() (codec.Format, error) {
	if s.format != codec.FormatUnknown {
		return s.format, nil
	}
	return codec.FormatForPath(s.path)
}

func (s *Service) flush(ctx context.Context) error {
	snapshot := model.NewSnapshot(s.notes.Values())
	var err error
	if s.format == codec.FormatUnknown {
		err = s.persistence.SaveAuto(ctx, *snapshot, s.path)
	} else {
		err = s.persistence.Save(ctx, *snapshot, s.path, s.format)
	}
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "snapshot flushed", "path", s.path, "notes", len(snapshot.Notes))
	return nil
}

func (s *Service) load(ctx context.Context) (model.Snapshot, error) {
	if s.format == codec.FormatUnknown {
		return s.persistence.LoadAuto(ctx, s.path)
	}
	return s.persistence.Load(ctx, s.path, s.format)
}

// New creates a note Service backed by the snapshot at path. Call Open to load
// existing notes.
func New(path string, options ...Option) *Service {
	s := &Service{
		path:   path,
		notes:  store.NewMemoryStore[tinyid.ID, model.Note](keyOf, store.WithOrder[tinyid.ID, model.Note](tinyid.Compare)),
		logger: logging.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.ids == nil {
		s.ids = tinyid.NewGenerator()
	}
	if s.persistence == nil {
		s.persistence = persist.New[model.Snapshot](persist.WithLogger(s.logger))
	}
	return s
}

func keyOf(n *model.Note) tinyid.ID { return n.ID }
