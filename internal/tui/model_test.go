package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/rangecal/internal/config"
	"github.com/javiermolinar/rangecal/internal/selection"
	"github.com/javiermolinar/rangecal/internal/tui/commands"
	"github.com/javiermolinar/rangecal/internal/tui/theme"
)

func TestNew_ShowsConsecutiveMonths(t *testing.T) {
	tests := []struct {
		name   string
		months int
		want   []time.Month
	}{
		{name: "one", months: 1, want: []time.Month{time.January}},
		{name: "two", months: 2, want: []time.Month{time.January, time.February}},
		{name: "three", months: 3, want: []time.Month{time.January, time.February, time.March}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil, func(cfg *config.Config) {
				cfg.Calendar.MonthsShown = tt.months
			})
			if len(m.views) != len(tt.want) {
				t.Fatalf("views = %d, want %d", len(m.views), len(tt.want))
			}
			for i, v := range m.views {
				if got := v.State().ActiveDate().Month(); got != tt.want[i] {
					t.Errorf("view %d month = %v, want %v", i, got, tt.want[i])
				}
			}
			if got := m.views[0].State().ActiveDate(); !sameDay(&got, ptr(day(time.January, 15))) {
				t.Errorf("focused active date = %v, want today", got)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		edit func(*config.Config)
	}{
		{name: "bad min date", edit: func(cfg *config.Config) { cfg.Calendar.MinDate = "2025-13-01" }},
		{name: "reversed comparison", edit: func(cfg *config.Config) {
			cfg.Calendar.ComparisonStart = "2025-01-20"
			cfg.Calendar.ComparisonEnd = "2025-01-10"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.edit(cfg)
			m, err := New(nil, cfg, WithNow(func() time.Time { return testNow }))
			if err == nil {
				m.Close()
				t.Fatal("New() error = nil, want error")
			}
			if !strings.Contains(err.Error(), "configuring calendar") {
				t.Errorf("New() error = %v, want configuring calendar error", err)
			}
		})
	}
}

func TestNew_UnknownThemeFallsBack(t *testing.T) {
	m := newTestModel(t, nil, func(cfg *config.Config) {
		cfg.UI.Theme = "solarized"
	})
	if m.theme.Name != theme.DefaultName {
		t.Errorf("theme = %q, want %q", m.theme.Name, theme.DefaultName)
	}
}

func TestCalendarConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Calendar.Mode = config.ModeSingle
	cfg.Calendar.RTL = true
	cfg.Calendar.MinDate = "2025-01-05"
	cfg.Calendar.DisabledWeekdays = []string{"sunday"}
	cfg.Calendar.ComparisonStart = "2025-01-02"

	a, err := NewAdapter(cfg, func() time.Time { return testNow })
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}
	cc, comparison, err := CalendarConfig(cfg, a, nil)
	if err != nil {
		t.Fatalf("CalendarConfig() error = %v", err)
	}

	if cc.Mode != selection.Single || cc.Strategy != nil {
		t.Errorf("mode = %v strategy = %v, want single without strategy", cc.Mode, cc.Strategy)
	}
	if !cc.RTL {
		t.Error("RTL = false, want true")
	}
	if cc.MinDate == nil || cc.MinDate.Day() != 5 {
		t.Errorf("MinDate = %v, want 2025-01-05", cc.MinDate)
	}
	if cc.DateFilter == nil || cc.DateFilter(day(time.January, 12)) {
		t.Error("DateFilter should reject Sundays")
	}
	if !cc.Comparator(day(time.January, 3), day(time.January, 3).Add(5*time.Hour)) {
		t.Error("Comparator should ignore the time of day")
	}
	if comparison.Start == nil || comparison.End != nil {
		t.Errorf("comparison = %v, want open range from 2025-01-02", comparison)
	}
}

func TestInit_LoadsLatestSelection(t *testing.T) {
	repo := &fakeRepo{latest: &selection.Saved{
		Mode:  selection.Range,
		Start: day(time.March, 3),
		End:   ptr(day(time.March, 9)),
	}}
	m := newTestModel(t, repo, nil)

	for _, msg := range runCmd(m.Init()) {
		m, _ = update(t, m, msg)
	}

	for i := range m.views {
		assertRange(t, m, i, ptr(day(time.March, 3)), ptr(day(time.March, 9)))
	}
	if got := m.views[0].State().ActiveDate().Month(); got != time.March {
		t.Errorf("focused month = %v, want March", got)
	}
	if got := m.views[1].State().ActiveDate().Month(); got != time.April {
		t.Errorf("second month = %v, want April", got)
	}
}

func TestInit_SkipsLoadWhenInitNeeded(t *testing.T) {
	m := newTestModel(t, nil, nil, WithInitState(InitState{NeedsInit: true}))
	if cmd := m.Init(); cmd != nil {
		t.Errorf("Init() = %v, want nil", cmd)
	}
}

func TestLatestLoaded_ConvertsMode(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		saved     *selection.Saved
		wantStart *time.Time
		wantEnd   *time.Time
	}{
		{
			name:      "single into range",
			mode:      config.ModeRange,
			saved:     &selection.Saved{Mode: selection.Single, Start: day(time.January, 20)},
			wantStart: ptr(day(time.January, 20)),
			wantEnd:   ptr(day(time.January, 20)),
		},
		{
			name: "range into single",
			mode: config.ModeSingle,
			saved: &selection.Saved{
				Mode:  selection.Range,
				Start: day(time.January, 20),
				End:   ptr(day(time.January, 25)),
			},
			wantStart: ptr(day(time.January, 20)),
			wantEnd:   ptr(day(time.January, 20)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil, func(cfg *config.Config) {
				cfg.Calendar.Mode = tt.mode
			})
			m, _ = update(t, m, commands.LatestLoadedMsg{Saved: tt.saved})
			assertRange(t, m, 0, tt.wantStart, tt.wantEnd)
			if got := m.views[0].State().Selection.Mode.String(); got != tt.mode {
				t.Errorf("selection mode = %q, want %q", got, tt.mode)
			}
		})
	}
}

func TestStatusMessages(t *testing.T) {
	m := newTestModel(t, nil, nil)

	m, cmd := update(t, m, commands.ErrMsg{Err: errors.New("disk full")})
	if cmd == nil {
		t.Error("ErrMsg should schedule a status clear")
	}
	if !m.statusErr || !strings.Contains(m.statusMsg, "disk full") {
		t.Errorf("status = %q (err %v), want error status", m.statusMsg, m.statusErr)
	}

	// The clock has not moved, so the clear is early and ignored.
	m, _ = update(t, m, commands.ClearStatusMsg{})
	if m.statusMsg == "" {
		t.Error("early ClearStatusMsg cleared the status")
	}

	m.now = func() time.Time { return testNow.Add(time.Minute) }
	m, _ = update(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "" || m.statusErr {
		t.Errorf("status = %q (err %v), want cleared", m.statusMsg, m.statusErr)
	}
}
