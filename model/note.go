package model

import (
	"time"

	"github.com/viant/noted/tinyid"
)

// SnapshotVersion is the layout version written by this build.
const SnapshotVersion = 1

// Note is the minimal record kept by the note repository.
type Note struct {
	ID        tinyid.ID `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Body      string    `json:"body,omitempty" yaml:"body,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Clone returns a shallow copy; Note holds no reference fields.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}

// Normalize converts timestamps to UTC. Binary codecs restore times in the
// local zone, so loaded notes are normalized before use.
func (n *Note) Normalize() {
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
}

// Snapshot is the persisted form of a note collection.
type Snapshot struct {
	Version int     `json:"version" yaml:"version"`
	Notes   []*Note `json:"notes" yaml:"notes"`
}

// NewSnapshot returns a current-version snapshot of notes.
func NewSnapshot(notes []*Note) *Snapshot {
	if notes == nil {
		notes = []*Note{}
	}
	return &Snapshot{Version: SnapshotVersion, Notes: notes}
}
