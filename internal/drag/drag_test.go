package drag

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/rangecal/internal/grid"
	"github.com/javiermolinar/rangecal/internal/rangecmp"
)

func cellOn(d time.Time, enabled bool) *grid.Cell {
	return &grid.Cell{
		Value:        d.Day(),
		Enabled:      enabled,
		CompareValue: d.UnixMilli(),
		RawValue:     d,
	}
}

func jan(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func feb(d int) time.Time {
	return time.Date(2025, time.February, d, 0, 0, 0, 0, time.UTC)
}

// rangeJan10to20 is the selection most tests drag from.
var rangeJan10to20 = rangecmp.Range{
	Start: rangecmp.At(jan(10).UnixMilli()),
	End:   rangecmp.At(jan(20).UnixMilli()),
}

func newController(id GridID) Controller {
	c := New(id)
	c.SetRange(rangeJan10to20, true)
	return c
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func TestPress_OutsideRangeDoesNotStart(t *testing.T) {
	c := newController(1)
	for _, d := range []int{1, 9, 21, 31} {
		if ev := c.Press(Target{Grid: 1, Cell: cellOn(jan(d), true)}); len(ev) != 0 {
			t.Errorf("press on day %d emitted %v", d, ev)
		}
		if c.Engaged() {
			t.Errorf("press on day %d engaged a drag", d)
		}
	}
}

func TestPress_DisabledOrSingleMode(t *testing.T) {
	c := newController(1)
	if ev := c.Press(Target{Grid: 1, Cell: cellOn(jan(12), false)}); len(ev) != 0 {
		t.Errorf("press on disabled cell emitted %v", ev)
	}

	single := New(1)
	single.SetRange(rangeJan10to20, false)
	if ev := single.Press(Target{Grid: 1, Cell: cellOn(jan(12), true)}); len(ev) != 0 {
		t.Errorf("press in single mode emitted %v", ev)
	}
}

func TestDragLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		release   Target
		wantPhase Phase
		wantValue *time.Time
	}{
		{
			name:      "release on a cell of the same grid",
			release:   Target{Grid: 1, Cell: cellOn(jan(15), true)},
			wantPhase: Completed,
			wantValue: ptr(jan(15)),
		},
		{
			name:      "release outside any cell",
			release:   Target{Grid: 1},
			wantPhase: Canceled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(1)
			var all []Event
			all = append(all, c.Press(Target{Grid: 1, Cell: cellOn(jan(12), true)})...)
			all = append(all, c.Move(Target{Grid: 1, Cell: cellOn(jan(13), true)}, Mouse, false)...)
			all = append(all, c.Move(Target{Grid: 1, Cell: cellOn(jan(14), true)}, Mouse, false)...)
			all = append(all, c.Release(tt.release, Contains(1)(tt.release))...)
			// A second release must not end the drag twice.
			all = append(all, c.Release(tt.release, Contains(1)(tt.release))...)

			if n := countEvents[Started](all); n != 1 {
				t.Errorf("Started count = %d, want 1", n)
			}
			if n := countEvents[Ended](all); n != 1 {
				t.Errorf("Ended count = %d, want 1", n)
			}
			if _, ok := all[0].(Started); !ok {
				t.Errorf("first event = %T, want Started", all[0])
			}
			last := all[len(all)-1].(Ended)
			if diff := cmp.Diff(tt.wantValue, last.Value); diff != "" {
				t.Errorf("Ended value mismatch (-want +got):\n%s", diff)
			}
			if c.Phase() != tt.wantPhase {
				t.Errorf("phase = %v, want %v", c.Phase(), tt.wantPhase)
			}
		})
	}
}

func TestRelease_InOtherGridIsDropped(t *testing.T) {
	c := newController(1)
	if ev := c.Press(Target{Grid: 1, Cell: cellOn(jan(12), true)}); len(ev) != 1 {
		t.Fatalf("press emitted %v, want Started", ev)
	}
	other := Target{Grid: 2, Cell: cellOn(feb(3), true)}
	if ev := c.Release(other, Contains(1)(other)); len(ev) != 0 {
		t.Errorf("release in another grid emitted %v", ev)
	}
	if c.Engaged() {
		t.Error("controller should not stay engaged after the gesture ended")
	}
	if ev := c.Cancel(); len(ev) != 0 {
		t.Errorf("cancel after dropped gesture emitted %v", ev)
	}
}

func TestMove_PreviewChanges(t *testing.T) {
	c := newController(1)
	ev := c.Move(Target{Grid: 1, Cell: cellOn(jan(5), true)}, Mouse, false)
	want := []Event{PreviewChanged{Cell: cellOn(jan(5), true)}}
	if diff := cmp.Diff(want, ev); diff != "" {
		t.Errorf("hover mismatch (-want +got):\n%s", diff)
	}

	if ev := c.Move(Target{Grid: 1, Cell: cellOn(jan(5), true)}, Mouse, false); len(ev) != 0 {
		t.Errorf("motion inside the same cell emitted %v", ev)
	}

	ev = c.Move(Target{Grid: 1, Cell: cellOn(jan(6), false)}, Mouse, false)
	if diff := cmp.Diff([]Event{PreviewChanged{}}, ev); diff != "" {
		t.Errorf("disabled hover mismatch (-want +got):\n%s", diff)
	}

	c.Move(Target{Grid: 1, Cell: cellOn(jan(7), true)}, Mouse, false)
	ev = c.Move(Target{Grid: 1}, Mouse, false)
	if diff := cmp.Diff([]Event{PreviewChanged{}}, ev); diff != "" {
		t.Errorf("leave mismatch (-want +got):\n%s", diff)
	}
	if ev := c.Move(Target{Grid: 1}, Mouse, false); len(ev) != 0 {
		t.Errorf("second leave emitted %v", ev)
	}
}

func TestLeave(t *testing.T) {
	c := newController(1)
	c.Move(Target{Grid: 1, Cell: cellOn(jan(12), true)}, Mouse, false)

	if ev := c.Leave(Target{Grid: 1, Cell: cellOn(jan(13), true)}); len(ev) != 0 {
		t.Errorf("leaving to another cell of the grid emitted %v", ev)
	}
	ev := c.Leave(Target{Grid: 1})
	if diff := cmp.Diff([]Event{PreviewChanged{}}, ev); diff != "" {
		t.Errorf("leave to a non-cell (-want +got):\n%s", diff)
	}
	if ev := c.Leave(Target{Grid: 1}); len(ev) != 0 {
		t.Errorf("second leave emitted %v", ev)
	}
}

func TestClick_SuppressedAfterMove(t *testing.T) {
	c := newController(1)
	origin := Target{Grid: 1, Cell: cellOn(jan(12), true)}
	c.Press(origin)
	c.Move(Target{Grid: 1, Cell: cellOn(jan(13), true)}, Mouse, false)
	c.Move(origin, Mouse, false)
	c.Release(origin, true)
	if ev := c.Click(origin); len(ev) != 0 {
		t.Errorf("click after a moving drag emitted %v", ev)
	}

	c.Press(origin)
	c.Release(origin, true)
	ev := c.Click(origin)
	if diff := cmp.Diff([]Event{Clicked{Cell: origin.Cell}}, ev); diff != "" {
		t.Errorf("click without movement mismatch (-want +got):\n%s", diff)
	}
}

func TestTouch_DidMove(t *testing.T) {
	c := newController(1)
	origin := Target{Grid: 1, Cell: cellOn(jan(12), true)}

	c.Press(origin)
	c.Move(origin, Touch, false)
	if c.State().DidMove {
		t.Error("touch on the same element should be a tap")
	}
	c.Move(Target{Grid: 1, Cell: cellOn(jan(14), true)}, Touch, true)
	if !c.State().DidMove {
		t.Error("touch resolved to another element should count as a drag")
	}

	single := New(1)
	if ev := single.Move(origin, Touch, true); len(ev) != 0 {
		t.Errorf("touchmove in single mode emitted %v", ev)
	}
}

func TestCancel(t *testing.T) {
	c := newController(1)
	if ev := c.Cancel(); len(ev) != 0 {
		t.Errorf("cancel while idle emitted %v", ev)
	}
	c.Press(Target{Grid: 1, Cell: cellOn(jan(12), true)})
	ev := c.Cancel()
	if diff := cmp.Diff([]Event{Ended{}}, ev); diff != "" {
		t.Errorf("cancel mismatch (-want +got):\n%s", diff)
	}
	if c.Phase() != Canceled {
		t.Errorf("phase = %v, want Canceled", c.Phase())
	}
	if ev := c.Press(Target{Grid: 1, Cell: cellOn(jan(15), true)}); len(ev) != 1 {
		t.Errorf("new gesture after cancel emitted %v, want Started", ev)
	}
}

func TestPress_WhileEngagedEndsPreviousDrag(t *testing.T) {
	tests := []struct {
		name       string
		second     Target
		wantEvents []Event
		wantPhase  Phase
	}{
		{
			name:       "second press inside the range",
			second:     Target{Grid: 1, Cell: cellOn(jan(18), true)},
			wantEvents: []Event{Ended{}, Started{Origin: jan(18)}},
			wantPhase:  Engaged,
		},
		{
			name:       "second press outside the range",
			second:     Target{Grid: 1, Cell: cellOn(jan(25), true)},
			wantEvents: []Event{Ended{}},
			wantPhase:  Idle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(1)
			all := c.Press(Target{Grid: 1, Cell: cellOn(jan(12), true)})

			got := c.Press(tt.second)
			if diff := cmp.Diff(tt.wantEvents, got); diff != "" {
				t.Errorf("second press mismatch (-want +got):\n%s", diff)
			}
			if c.Phase() != tt.wantPhase {
				t.Errorf("phase = %v, want %v", c.Phase(), tt.wantPhase)
			}
			all = append(all, got...)
			all = append(all, c.Release(Target{Grid: 1}, false)...)

			if started, ended := countEvents[Started](all), countEvents[Ended](all); started != ended {
				t.Errorf("Started = %d, Ended = %d, want them paired", started, ended)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	if Engaged.String() != "Engaged" || Phase(9).String() != "Phase(9)" {
		t.Errorf("unexpected phase strings %q %q", Engaged, Phase(9))
	}
}

func ptr(t time.Time) *time.Time { return &t }
