// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "mocha"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Month boxes
	BgSelection string `toml:"bg_selection"` // Keyboard cursor
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Disabled days, weekday header
	Accent      string `toml:"accent"`       // Month label, borders
	Range       string `toml:"range"`        // Committed range
	Comparison  string `toml:"comparison"`   // Comparison range
	Preview     string `toml:"preview"`      // Hover and drag preview
	Today       string `toml:"today"`        // Today marker
	Warning     string `toml:"warning"`      // Status errors

	// Optional overrides
	RangeBg      string `toml:"range_bg"`
	ComparisonBg string `toml:"comparison_bg"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.Range == "" {
		t.Range = t.Accent
	}
	if t.Comparison == "" {
		t.Comparison = coalesce(t.Warning, t.Accent)
	}
	if t.Preview == "" {
		t.Preview = coalesce(t.BgSelection, t.Accent)
	}
	if t.Today == "" {
		t.Today = t.Accent
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
