package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/rangecal/internal/config"
)

func TestDetectInitState(t *testing.T) {
	tests := []struct {
		name        string
		writeConfig bool
		writeDB     bool
		want        InitState
	}{
		{
			name: "nothing exists",
			want: InitState{NeedsInit: true, ConfigMissing: true, DBMissing: true},
		},
		{
			name:        "config only",
			writeConfig: true,
			want:        InitState{NeedsInit: true, DBMissing: true},
		},
		{
			name:        "both exist",
			writeConfig: true,
			writeDB:     true,
			want:        InitState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)

			cfg := config.Default()
			if tt.writeConfig {
				if err := cfg.Save(); err != nil {
					t.Fatalf("Save() error = %v", err)
				}
			}
			if tt.writeDB {
				if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(cfg.Storage.DBPath, nil, 0o644); err != nil {
					t.Fatal(err)
				}
			}

			got, err := DetectInitState(cfg)
			if err != nil {
				t.Fatalf("DetectInitState() error = %v", err)
			}
			tt.want.ConfigPath = config.DefaultConfigPath()
			tt.want.DBPath = cfg.Storage.DBPath
			if got != tt.want {
				t.Errorf("DetectInitState() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPathMissing_EmptyPath(t *testing.T) {
	missing, err := pathMissing("")
	if err != nil || !missing {
		t.Errorf("pathMissing(\"\") = %v, %v; want true, nil", missing, err)
	}
}

func TestOpenRepo_EmptyPath(t *testing.T) {
	if _, err := openRepo(""); !errors.Is(err, ErrNoStorePath) {
		t.Errorf("openRepo(\"\") error = %v, want ErrNoStorePath", err)
	}
}

func TestInitState_Pending(t *testing.T) {
	tests := []struct {
		state InitState
		want  string
	}{
		{state: InitState{ConfigMissing: true, DBMissing: true}, want: "config and selection store"},
		{state: InitState{DBMissing: true}, want: "selection store"},
		{state: InitState{ConfigMissing: true}, want: "config"},
		{state: InitState{}, want: ""},
	}
	for _, tt := range tests {
		if got := tt.state.Pending(); got != tt.want {
			t.Errorf("Pending(%+v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
