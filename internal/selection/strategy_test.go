package selection

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/rangecal/internal/dateadapter"
	"github.com/javiermolinar/rangecal/internal/event"
)

func day(d int) *time.Time {
	t := time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func rng(start, end int) event.DateRange {
	var r event.DateRange
	if start > 0 {
		r.Start = day(start)
	}
	if end > 0 {
		r.End = day(end)
	}
	return r
}

func newAdapter(t *testing.T) dateadapter.Adapter {
	t.Helper()
	a, err := dateadapter.NewTime(dateadapter.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("NewTime: %v", err)
	}
	return a
}

func TestSelectionFinished(t *testing.T) {
	s := NewDefaultRangeStrategy(newAdapter(t))
	tests := []struct {
		name    string
		date    int
		current event.DateRange
		want    event.DateRange
	}{
		{"empty starts", 10, rng(0, 0), rng(10, 0)},
		{"open range closes", 15, rng(10, 0), rng(10, 15)},
		{"open range closes on same day", 10, rng(10, 0), rng(10, 10)},
		{"before start restarts", 5, rng(10, 0), rng(5, 0)},
		{"complete range restarts", 20, rng(10, 15), rng(20, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SelectionFinished(day(tt.date), tt.current)
			if diff := cmp.Diff(tt.want.String(), got.String()); diff != "" {
				t.Errorf("SelectionFinished mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreatePreview(t *testing.T) {
	s := NewDefaultRangeStrategy(newAdapter(t))
	if got := s.CreatePreview(day(20), rng(10, 0)); got.String() != rng(10, 20).String() {
		t.Errorf("open range preview = %s, want %s", got, rng(10, 20))
	}
	if got := s.CreatePreview(day(20), rng(10, 15)); !got.Empty() {
		t.Errorf("complete range preview = %s, want empty", got)
	}
	if got := s.CreatePreview(nil, rng(10, 0)); !got.Empty() {
		t.Errorf("no hover preview = %s, want empty", got)
	}
}

func TestCreateDrag(t *testing.T) {
	s := NewDefaultRangeStrategy(newAdapter(t))
	tests := []struct {
		name    string
		origin  int
		hover   int
		current event.DateRange
		want    string
		ok      bool
	}{
		{"resize start", 10, 8, rng(10, 15), "2025-01-08..2025-01-15", true},
		{"resize end", 15, 20, rng(10, 15), "2025-01-10..2025-01-20", true},
		{"start past end shifts end", 10, 17, rng(10, 15), "2025-01-17..2025-01-22", true},
		{"end before start shifts start", 15, 5, rng(10, 15), "2024-12-31..2025-01-05", true},
		{"move from the middle", 12, 14, rng(10, 15), "2025-01-12..2025-01-17", true},
		{"move single day", 10, 12, rng(10, 10), "2025-01-12..2025-01-12", true},
		{"incomplete range", 10, 12, rng(10, 0), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.CreateDrag(*day(tt.origin), tt.current, *day(tt.hover))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("CreateDrag mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
