package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rangecal/internal/config"
	"github.com/javiermolinar/rangecal/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var initOnly bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.
With --init the defaults are written and nothing is asked.

Example:
  rangecal config
  rangecal config --init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath(), initOnly)
		},
	}

	cmd.Flags().BoolVar(&initOnly, "init", false, "Only create the config file with default values")
	return cmd
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string, initOnly bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if errors.Is(fileErr, os.ErrNotExist) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	} else if initOnly {
		fmt.Fprintln(out, "Config file already exists.")
	}
	if initOnly {
		return nil
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cal := &cfg.Calendar
	cal.FirstDayOfWeek = promptValue(reader, out, "First day of week", cal.FirstDayOfWeek)
	cal.Mode = promptValue(reader, out, "Mode (single, range)", cal.Mode)
	cal.MonthsShown = promptInt(reader, out, fmt.Sprintf("Months shown (1-%d)", config.MaxMonthsShown), cal.MonthsShown)
	cal.MinDate = promptValue(reader, out, "Min date (YYYY-MM-DD, empty for none)", cal.MinDate)
	cal.MaxDate = promptValue(reader, out, "Max date (YYYY-MM-DD, empty for none)", cal.MaxDate)
	cal.DisabledWeekdays = promptSlice(reader, out, "Disabled weekdays (comma-separated)", cal.DisabledWeekdays)
	cal.RTL = promptBool(reader, out, "Right to left", cal.RTL)
	cal.ComparisonStart = promptValue(reader, out, "Comparison start (YYYY-MM-DD, empty for none)", cal.ComparisonStart)
	cal.ComparisonEnd = promptValue(reader, out, "Comparison end (YYYY-MM-DD, empty for none)", cal.ComparisonEnd)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	cal := cfg.Calendar
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[calendar]")
	fmt.Fprintf(w, "  first_day_of_week = %s\n", cal.FirstDayOfWeek)
	fmt.Fprintf(w, "  mode              = %s\n", cal.Mode)
	fmt.Fprintf(w, "  months_shown      = %d\n", cal.MonthsShown)
	if cal.MinDate != "" || cal.MaxDate != "" {
		fmt.Fprintf(w, "  min_date          = %s\n", cal.MinDate)
		fmt.Fprintf(w, "  max_date          = %s\n", cal.MaxDate)
	}
	if len(cal.DisabledWeekdays) > 0 {
		fmt.Fprintf(w, "  disabled_weekdays = %s\n", strings.Join(cal.DisabledWeekdays, ", "))
	}
	fmt.Fprintf(w, "  rtl               = %t\n", cal.RTL)
	if cal.ComparisonStart != "" || cal.ComparisonEnd != "" {
		fmt.Fprintf(w, "  comparison_start  = %s\n", cal.ComparisonStart)
		fmt.Fprintf(w, "  comparison_end    = %s\n", cal.ComparisonEnd)
	}
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path           = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme             = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label, strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Invalid value %q, use true or false\n", value)
	}
}

func promptSlice(reader *bufio.Reader, out io.Writer, label string, current []string) []string {
	currentStr := strings.Join(current, ", ")
	fmt.Fprintf(out, "  %s [%s]: ", label, currentStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	if input == "-" {
		return nil
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	if !theme.IsAvailable(current) {
		current = theme.DefaultName
	}
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
