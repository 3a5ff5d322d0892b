package selection

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/rangecal/internal/event"
)

// Storage errors.
var (
	ErrEmptySelection = errors.New("selection has no start date")
	ErrNotFound       = errors.New("selection not found")
)

// Saved is a committed selection as persisted by a Repository.
type Saved struct {
	ID        uuid.UUID
	Mode      Mode
	Start     time.Time
	End       *time.Time // nil for a single date or an open range
	Label     string
	CreatedAt time.Time
}

// NewSaved snapshots sel for storage. It fails for an empty selection.
func NewSaved(sel Selection, label string, now time.Time) (*Saved, error) {
	b := sel.Bounds()
	if b.Start == nil {
		return nil, ErrEmptySelection
	}
	s := &Saved{
		ID:        uuid.New(),
		Mode:      sel.Mode,
		Start:     *b.Start,
		Label:     label,
		CreatedAt: now,
	}
	if sel.Mode == Range && b.End != nil {
		end := *b.End
		s.End = &end
	}
	return s, nil
}

// Selection restores the saved value.
func (s *Saved) Selection() Selection {
	start := s.Start
	if s.Mode == Single {
		return Selection{Mode: Single, Date: &start}
	}
	return Selection{Mode: Range, Range: event.DateRange{Start: &start, End: s.End}}
}

// SelectionAs restores the saved value in mode. A range turns into its
// start date and a single date into a one-day range.
func (s *Saved) SelectionAs(mode Mode) Selection {
	start := s.Start
	switch {
	case mode == Range && s.Mode == Single:
		return Selection{Mode: Range, Range: event.DateRange{Start: &start, End: &start}}
	case mode == Single && s.Mode == Range:
		return Selection{Mode: Single, Date: &start}
	}
	return s.Selection()
}

// Repository defines the storage interface for saved selections.
type Repository interface {
	// Save stores a selection. A zero ID is replaced by a new one.
	Save(ctx context.Context, s *Saved) error

	// Get returns a selection by ID, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Saved, error)

	// List returns the most recent selections first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*Saved, error)

	// Latest returns the most recent selection, or ErrNotFound.
	Latest(ctx context.Context) (*Saved, error)

	// Delete removes a selection, or returns ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// Close releases any resources held by the repository.
	Close() error
}
