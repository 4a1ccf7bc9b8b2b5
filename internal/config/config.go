package config

import (
	"errors"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "teamtasker.toml"
	DefaultLogFileName    = "teamtasker.log"

	// Default credentials written on first run: admin / admin123.
	defaultUsername     = "admin"
	defaultPasswordHash = "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
)

type Keymap struct {
	Quit      string `toml:"quit"`
	Help      string `toml:"help"`
	PrevMonth string `toml:"prev_month"`
	NextMonth string `toml:"next_month"`
	Today     string `toml:"today"`
	Open      string `toml:"open"`
	Add       string `toml:"add"`
	Edit      string `toml:"edit"`
	Toggle    string `toml:"toggle"`
	Delete    string `toml:"delete"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
}

type Config struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"`
	// Reminder evaluation and UI clock refresh are separate cadences on
	// purpose; tune one without touching the other.
	ReminderTickSeconds  int    `toml:"reminder_tick_seconds"`
	ClockRefreshSeconds  int    `toml:"clock_refresh_seconds"`
	DesktopNotifications bool   `toml:"desktop_notifications"`
	LogPath              string `toml:"log_path"`
	Keys                 Keymap `toml:"keys"`
}

// LoadOrCreate reads the config at path, writing the defaults there first
// when the file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.ReminderTickSeconds <= 0 || cfg.ReminderTickSeconds > 60 {
		cfg.ReminderTickSeconds = defaultConfig().ReminderTickSeconds
	}
	if cfg.ClockRefreshSeconds <= 0 {
		cfg.ClockRefreshSeconds = defaultConfig().ClockRefreshSeconds
	}
	return cfg, nil
}

func (c Config) ReminderInterval() time.Duration {
	return time.Duration(c.ReminderTickSeconds) * time.Second
}

func (c Config) ClockRefreshInterval() time.Duration {
	return time.Duration(c.ClockRefreshSeconds) * time.Second
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		Username:             defaultUsername,
		PasswordHash:         defaultPasswordHash,
		ReminderTickSeconds:  1,
		ClockRefreshSeconds:  60,
		DesktopNotifications: false,
		LogPath:              DefaultLogFileName,
		Keys: Keymap{
			Quit:      "q",
			Help:      "?",
			PrevMonth: "h",
			NextMonth: "l",
			Today:     "t",
			Open:      "enter",
			Add:       "a",
			Edit:      "e",
			Toggle:    " ",
			Delete:    "d",
			Confirm:   "enter",
			Cancel:    "esc",
		},
	}
}
