package drag

import "sync"

// Release is a pointer release as seen by one subscriber.
type Release struct {
	Target Target
	// Contained is the subscriber's own containment verdict for Target.
	Contained bool
}

type subscription struct {
	id       int
	contains func(Target) bool
	handler  func(Release)
}

// ReleaseBus fans a pointer release out to every grid on screen. It
// replaces window-level release listeners: each grid subscribes with its
// own containment predicate and owns its completion logic.
type ReleaseBus struct {
	mu   sync.Mutex
	next int
	subs []subscription
}

// NewReleaseBus creates an empty bus.
func NewReleaseBus() *ReleaseBus {
	return &ReleaseBus{}
}

// Subscribe registers a handler. contains may be nil, in which case no
// target is considered contained. The returned func removes the
// subscription and is safe to call more than once.
func (b *ReleaseBus) Subscribe(contains func(Target) bool, handler func(Release)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.subs = append(b.subs, subscription{id: id, contains: contains, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers a release to every subscriber in subscription order.
// Handlers run outside the lock, so they may subscribe or unsubscribe.
func (b *ReleaseBus) Publish(t Target) {
	b.mu.Lock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		contained := s.contains != nil && s.contains(t)
		if s.handler != nil {
			s.handler(Release{Target: t, Contained: contained})
		}
	}
}

// Len returns the number of subscribers.
func (b *ReleaseBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Contains returns the containment predicate for the grid with the given
// id: a target is contained when it resolves to a cell of that grid.
func Contains(id GridID) func(Target) bool {
	return func(t Target) bool {
		return t.Cell != nil && t.Grid == id
	}
}
