package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file written: %v", err)
	}
	if cfg.Username != "admin" {
		t.Fatalf("unexpected default username: %q", cfg.Username)
	}
	if cfg.ReminderInterval() != time.Second {
		t.Fatalf("unexpected default reminder interval: %v", cfg.ReminderInterval())
	}
	if cfg.ClockRefreshInterval() != time.Minute {
		t.Fatalf("unexpected default refresh interval: %v", cfg.ClockRefreshInterval())
	}
	if cfg.Keys.Quit != "q" || cfg.Keys.Cancel != "esc" {
		t.Fatalf("unexpected default keymap: %+v", cfg.Keys)
	}
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	body := `username = "marta"
password_hash = "abc"
reminder_tick_seconds = 30
clock_refresh_seconds = 5
desktop_notifications = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Username != "marta" || cfg.PasswordHash != "abc" {
		t.Fatalf("unexpected credentials: %+v", cfg)
	}
	if cfg.ReminderInterval() != 30*time.Second {
		t.Fatalf("unexpected reminder interval: %v", cfg.ReminderInterval())
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications enabled")
	}
	// Keymap falls back to defaults when the file omits it.
	if cfg.Keys.Add != "a" {
		t.Fatalf("unexpected add key: %q", cfg.Keys.Add)
	}
}

func TestLoadOrCreateClampsBadIntervals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	body := `reminder_tick_seconds = 900
clock_refresh_seconds = -1
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Reminder granularity is time of day, so anything over a minute is
	// pulled back to the default.
	if cfg.ReminderInterval() != time.Second {
		t.Fatalf("expected clamped reminder interval, got %v", cfg.ReminderInterval())
	}
	if cfg.ClockRefreshInterval() != time.Minute {
		t.Fatalf("expected clamped refresh interval, got %v", cfg.ClockRefreshInterval())
	}
}
