package dateadapter

import (
	"errors"
	"testing"
	"time"
)

func newTestAdapter(t *testing.T, opts ...Option) *Time {
	t.Helper()
	opts = append([]Option{WithLocation(time.UTC)}, opts...)
	a, err := NewTime(opts...)
	if err != nil {
		t.Fatalf("NewTime: %v", err)
	}
	return a
}

func TestNewTime_InvalidFirstDayOfWeek(t *testing.T) {
	for _, day := range []int{-1, 7} {
		_, err := NewTime(WithFirstDayOfWeek(day))
		if !errors.Is(err, ErrInvalidFirstDayOfWeek) {
			t.Errorf("first day %d: got error %v, want %v", day, err, ErrInvalidFirstDayOfWeek)
		}
	}
}

func TestCreateDate(t *testing.T) {
	a := newTestAdapter(t)

	t.Run("valid date", func(t *testing.T) {
		got, err := a.CreateDate(2024, 1, 29)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("overflowing day is rejected", func(t *testing.T) {
		_, err := a.CreateDate(2025, 1, 29)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDate)
		}
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := a.CreateDate(2025, 12, 1)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDate)
		}
	})
}

func TestAddCalendarMonths_ClampsDay(t *testing.T) {
	a := newTestAdapter(t)
	jan31 := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		months int
		want   time.Time
	}{
		{"forward into short month", 1, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)},
		{"backward across year", -2, time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC)},
		{"forward a full year", 12, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.AddCalendarMonths(jan31, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddCalendarYears_LeapDay(t *testing.T) {
	a := newTestAdapter(t)
	leap := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	got := a.AddCalendarYears(leap, 1)
	want := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCompareDate_IgnoresTimeOfDay(t *testing.T) {
	a := newTestAdapter(t)
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	if c := a.CompareDate(morning, evening); c != 0 {
		t.Errorf("CompareDate same day = %d, want 0", c)
	}
	if c := a.CompareDate(morning, a.AddCalendarDays(morning, 1)); c >= 0 {
		t.Errorf("CompareDate earlier day = %d, want < 0", c)
	}
}

func TestSameDate(t *testing.T) {
	a := newTestAdapter(t)
	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	other := d.AddDate(0, 0, 1)

	if !a.SameDate(nil, nil) {
		t.Error("two nil dates should be the same")
	}
	if a.SameDate(&d, nil) {
		t.Error("date and nil should differ")
	}
	if a.SameDate(&d, &other) {
		t.Error("different days should differ")
	}
}

func TestClampDate(t *testing.T) {
	a := newTestAdapter(t)
	lo := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	if got := a.ClampDate(lo.AddDate(0, 0, -5), &lo, &hi); !got.Equal(lo) {
		t.Errorf("below min: got %v, want %v", got, lo)
	}
	if got := a.ClampDate(hi.AddDate(0, 0, 5), &lo, &hi); !got.Equal(hi) {
		t.Errorf("above max: got %v, want %v", got, hi)
	}
	mid := lo.AddDate(0, 0, 3)
	if got := a.ClampDate(mid, nil, nil); !got.Equal(mid) {
		t.Errorf("unbounded: got %v, want %v", got, mid)
	}
}

func TestDeserialize(t *testing.T) {
	a := newTestAdapter(t)

	got, err := a.Deserialize("2025-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got, err = a.Deserialize("2025-06-01T15:04:05Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("timestamp: got %v, want %v", got, want)
	}

	if _, err := a.Deserialize("06/01/2025"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("got error %v, want %v", err, ErrInvalidDate)
	}
}

func TestNames(t *testing.T) {
	a := newTestAdapter(t)
	if got := a.MonthNames(NameShort)[8]; got != "Sep" {
		t.Errorf("short month 8 = %q, want %q", got, "Sep")
	}
	if got := a.DayOfWeekNames(NameNarrow)[3]; got != "W" {
		t.Errorf("narrow weekday 3 = %q, want %q", got, "W")
	}
	if got := a.DateNames()[30]; got != "31" {
		t.Errorf("date name 30 = %q, want %q", got, "31")
	}
}

func TestToday_UsesInjectedClock(t *testing.T) {
	fixed := time.Date(2025, 4, 2, 17, 45, 0, 0, time.UTC)
	a := newTestAdapter(t, WithNow(func() time.Time { return fixed }))
	want := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	if got := a.Today(); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
