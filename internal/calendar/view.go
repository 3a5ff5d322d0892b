package calendar

import (
	"time"

	"github.com/javiermolinar/rangecal/internal/drag"
	"github.com/javiermolinar/rangecal/internal/event"
)

// Sink receives the events a month view emits.
type Sink func(id drag.GridID, events []event.Event)

// MonthView holds a State and connects it to a shared release bus.
type MonthView struct {
	state       State
	sink        Sink
	unsubscribe func()
}

// NewMonthView creates a month view showing activeDate.
func NewMonthView(cfg Config, activeDate time.Time) (*MonthView, error) {
	st, err := New(cfg, activeDate)
	if err != nil {
		return nil, err
	}
	return &MonthView{state: st}, nil
}

// ID returns the view's grid id.
func (v *MonthView) ID() drag.GridID { return v.state.cfg.Grid }

// State returns the current state.
func (v *MonthView) State() State { return v.state }

// Attach subscribes the view to bus. Releases are applied to the view and
// whatever they emit goes to sink.
func (v *MonthView) Attach(bus *drag.ReleaseBus, sink Sink) {
	v.Detach()
	v.sink = sink
	v.unsubscribe = bus.Subscribe(drag.Contains(v.ID()), func(r drag.Release) {
		v.Dispatch(Release{Target: r.Target, Contained: r.Contained})
	})
}

// Detach drops the bus subscription.
func (v *MonthView) Detach() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// Dispatch applies an interaction, forwards the events to the sink and
// returns them.
func (v *MonthView) Dispatch(in Interaction) []event.Event {
	var evs []event.Event
	v.state, evs = Apply(v.state, in)
	v.emit(evs)
	return evs
}

// FlushFocus hands a pending focus request to s.
func (v *MonthView) FlushFocus(s FocusScheduler, movePreview bool) {
	FlushFocus(&v.state, s, movePreview)
}

// SyncScheduler returns a scheduler that focuses this view immediately.
func (v *MonthView) SyncScheduler() SyncScheduler {
	return SyncScheduler{State: &v.state, Sink: func(evs []event.Event) { v.emit(evs) }}
}

func (v *MonthView) emit(evs []event.Event) {
	if v.sink != nil && len(evs) > 0 {
		v.sink(v.ID(), evs)
	}
}
