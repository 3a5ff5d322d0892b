package drag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReleaseBus_DeliversContainment(t *testing.T) {
	bus := NewReleaseBus()
	got := map[GridID][]Release{}
	for _, id := range []GridID{1, 2} {
		id := id
		bus.Subscribe(Contains(id), func(r Release) {
			got[id] = append(got[id], r)
		})
	}

	target := Target{Grid: 2, Cell: cellOn(feb(3), true)}
	bus.Publish(target)

	want := map[GridID][]Release{
		1: {{Target: target, Contained: false}},
		2: {{Target: target, Contained: true}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("deliveries mismatch (-want +got):\n%s", diff)
	}
}

func TestReleaseBus_Unsubscribe(t *testing.T) {
	bus := NewReleaseBus()
	calls := 0
	unsubscribe := bus.Subscribe(nil, func(Release) { calls++ })
	bus.Publish(Target{})
	unsubscribe()
	unsubscribe()
	bus.Publish(Target{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if bus.Len() != 0 {
		t.Errorf("Len = %d, want 0", bus.Len())
	}
}

func TestReleaseBus_HandlerMayUnsubscribe(t *testing.T) {
	bus := NewReleaseBus()
	var unsubscribe func()
	calls := 0
	unsubscribe = bus.Subscribe(nil, func(Release) {
		calls++
		unsubscribe()
	})
	bus.Publish(Target{})
	bus.Publish(Target{})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

// Two grids share the bus; a drag started in the first and released over
// the second ends silently, and the second grid never sees a drag.
func TestReleaseBus_CrossGridRelease(t *testing.T) {
	bus := NewReleaseBus()
	first, second := newController(1), newController(2)
	var events []Event
	bus.Subscribe(Contains(1), func(r Release) {
		events = append(events, first.Release(r.Target, r.Contained)...)
	})
	bus.Subscribe(Contains(2), func(r Release) {
		events = append(events, second.Release(r.Target, r.Contained)...)
	})

	events = append(events, first.Press(Target{Grid: 1, Cell: cellOn(jan(12), true)})...)
	bus.Publish(Target{Grid: 2, Cell: cellOn(feb(3), true)})

	if n := countEvents[Started](events); n != 1 {
		t.Errorf("Started count = %d, want 1", n)
	}
	if n := countEvents[Ended](events); n != 0 {
		t.Errorf("Ended count = %d, want 0", n)
	}
	if first.Engaged() || second.Engaged() {
		t.Error("no controller should remain engaged")
	}
}

func TestReleaseBus_ReleaseOffGrid(t *testing.T) {
	bus := NewReleaseBus()
	c := newController(1)
	var events []Event
	bus.Subscribe(Contains(1), func(r Release) {
		events = append(events, c.Release(r.Target, r.Contained)...)
	})
	c.Press(Target{Grid: 1, Cell: cellOn(jan(12), true)})
	bus.Publish(Target{})

	if diff := cmp.Diff([]Event{Ended{}}, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
