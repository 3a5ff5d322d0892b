package selection

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestModel_Equal(t *testing.T) {
	m := NewModel(Single)
	morning := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC)

	if !m.Equal(&morning, &evening) {
		t.Error("default comparator should ignore the time of day")
	}
	if m.Equal(&morning, day(11)) {
		t.Error("different days compared equal")
	}
	if !m.Equal(nil, nil) {
		t.Error("two unset dates should compare equal")
	}
	if m.Equal(nil, &morning) {
		t.Error("unset and set dates compared equal")
	}
}

func TestModel_PanickingComparator(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	m := NewModel(Single,
		WithLogger(zap.New(core)),
		WithComparator(func(a, b time.Time) bool { panic("boom") }),
	)

	if m.Equal(day(1), day(1)) {
		t.Error("a panicking comparator should count as no match")
	}
	entries := logs.FilterMessage("date comparator panicked; treating values as different").All()
	if len(entries) != 1 {
		t.Fatalf("got %d warnings, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["panic"]; got != "boom" {
		t.Errorf("panic field = %v, want boom", got)
	}
}

func TestModel_SetAndClear(t *testing.T) {
	m := NewModel(Range)
	m.SetRange(rng(3, 9))
	if got := m.Selection().Bounds().String(); got != "2025-01-03..2025-01-09" {
		t.Errorf("bounds = %s", got)
	}
	m.Clear()
	if !m.Selection().Empty() || m.Mode() != Range {
		t.Errorf("after Clear: %+v", m.Selection())
	}

	s := NewModel(Single)
	s.SetDate(day(4))
	if got := s.Selection().Bounds().String(); got != "2025-01-04..2025-01-04" {
		t.Errorf("single bounds = %s", got)
	}
}
