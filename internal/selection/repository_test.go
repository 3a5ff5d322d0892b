package selection

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/rangecal/internal/event"
)

func TestNewSaved(t *testing.T) {
	now := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)

	if _, err := NewSaved(Selection{Mode: Range}, "", now); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("NewSaved(empty) error = %v, want ErrEmptySelection", err)
	}

	open := Selection{Mode: Range, Range: event.DateRange{Start: day(10)}}
	s, err := NewSaved(open, "trip", now)
	if err != nil {
		t.Fatalf("NewSaved() error = %v", err)
	}
	if s.End != nil || !s.Start.Equal(*day(10)) || s.Label != "trip" || !s.CreatedAt.Equal(now) {
		t.Errorf("NewSaved(open) = %+v", s)
	}
	if s.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("NewSaved did not assign an id")
	}
}

func TestSaved_SelectionAs(t *testing.T) {
	single := &Saved{Mode: Single, Start: *day(10)}
	ranged := &Saved{Mode: Range, Start: *day(10), End: day(14)}

	tests := []struct {
		name  string
		saved *Saved
		mode  Mode
		want  event.DateRange
	}{
		{name: "single as single", saved: single, mode: Single, want: event.DateRange{Start: day(10), End: day(10)}},
		{name: "single as range", saved: single, mode: Range, want: event.DateRange{Start: day(10), End: day(10)}},
		{name: "range as range", saved: ranged, mode: Range, want: event.DateRange{Start: day(10), End: day(14)}},
		{name: "range as single", saved: ranged, mode: Single, want: event.DateRange{Start: day(10), End: day(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.saved.SelectionAs(tt.mode)
			if got.Mode != tt.mode {
				t.Errorf("mode = %v, want %v", got.Mode, tt.mode)
			}
			if diff := cmp.Diff(tt.want, got.Bounds()); diff != "" {
				t.Errorf("bounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
