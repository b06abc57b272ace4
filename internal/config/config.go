// Package config loads the optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/tasbih/internal/osutil"
)

// ConfigFile is the name of the TOML configuration file
const ConfigFile = "config.toml"

// Validation errors.
var (
	ErrInvalidBackend      = errors.New("invalid storage backend")
	ErrInvalidSoundOutput  = errors.New("invalid sound output")
	ErrInvalidFrequency    = errors.New("invalid sound frequency")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrInvalidRestartDelay = errors.New("invalid voice restart delay")
)

// Valid values for enumerated settings.
var (
	ValidBackends     = []string{"file", "sqlite", "memory"}
	ValidSoundOutputs = []string{"auto", "command", "bell", "none"}
)

// Config represents the application configuration
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Voice   VoiceConfig   `toml:"voice"`
	Sound   SoundConfig   `toml:"sound"`
	UI      UIConfig      `toml:"ui"`
}

// StorageConfig selects where session state is persisted.
type StorageConfig struct {
	// Backend is one of file, sqlite or memory
	Backend string `toml:"backend"`
	// Dir overrides the data directory; empty means the user config dir
	Dir string `toml:"dir"`
}

// VoiceConfig configures the external speech-to-text command.
type VoiceConfig struct {
	// Locale is passed to the recognizer (BCP 47 tag)
	Locale string `toml:"locale"`
	// Command is the argv of the recognizer process; empty disables voice
	Command []string `toml:"command"`
	// RestartDelay is waited before restarting an ended recognition
	RestartDelay string `toml:"restart_delay"`
}

// SoundConfig configures the feedback tone.
type SoundConfig struct {
	// Output is one of auto, command, bell or none
	Output string `toml:"output"`
	// Frequency of the tone in Hz
	Frequency float64 `toml:"frequency"`
	// DurationMs is the tone length in milliseconds
	DurationMs int `toml:"duration_ms"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	// DarkTheme and LightTheme are bubbletint theme IDs
	DarkTheme  string `toml:"dark_theme"`
	LightTheme string `toml:"light_theme"`
	// PulseMs is how long the success highlight stays after a count
	PulseMs int `toml:"pulse_ms"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: "file",
		},
		Voice: VoiceConfig{
			Locale:       "ar-SA",
			Command:      []string{},
			RestartDelay: "250ms",
		},
		Sound: SoundConfig{
			Output:     "auto",
			Frequency:  800,
			DurationMs: 100,
		},
		UI: UIConfig{
			DarkTheme:  "dracula",
			LightTheme: "github",
			PulseMs:    300,
		},
	}
}

// GetConfigPath returns the path to the config file, creating its directory.
func GetConfigPath() (string, error) {
	return osutil.AppPath(ConfigFile)
}

// Load reads the config file at path. Missing keys keep their defaults.
// The result is normalized and validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns DefaultConfig if the file does not
// exist. Any other failure is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Normalize lowercases enumerated values and fills zero values with defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	c.Storage.Dir = strings.TrimSpace(c.Storage.Dir)

	c.Voice.Locale = strings.TrimSpace(c.Voice.Locale)
	if c.Voice.Locale == "" {
		c.Voice.Locale = def.Voice.Locale
	}
	if strings.TrimSpace(c.Voice.RestartDelay) == "" {
		c.Voice.RestartDelay = def.Voice.RestartDelay
	}

	c.Sound.Output = strings.ToLower(strings.TrimSpace(c.Sound.Output))
	if c.Sound.Output == "" {
		c.Sound.Output = def.Sound.Output
	}
	if c.Sound.Frequency == 0 {
		c.Sound.Frequency = def.Sound.Frequency
	}
	if c.Sound.DurationMs == 0 {
		c.Sound.DurationMs = def.Sound.DurationMs
	}

	if strings.TrimSpace(c.UI.DarkTheme) == "" {
		c.UI.DarkTheme = def.UI.DarkTheme
	}
	if strings.TrimSpace(c.UI.LightTheme) == "" {
		c.UI.LightTheme = def.UI.LightTheme
	}
	if c.UI.PulseMs == 0 {
		c.UI.PulseMs = def.UI.PulseMs
	}
}

// Validate checks every setting and returns the first error found.
func (c Config) Validate() error {
	if !contains(ValidBackends, c.Storage.Backend) {
		return fmt.Errorf("%w %q: must be one of %s", ErrInvalidBackend, c.Storage.Backend, strings.Join(ValidBackends, ", "))
	}
	if !contains(ValidSoundOutputs, c.Sound.Output) {
		return fmt.Errorf("%w %q: must be one of %s", ErrInvalidSoundOutput, c.Sound.Output, strings.Join(ValidSoundOutputs, ", "))
	}
	if c.Sound.Frequency < 20 || c.Sound.Frequency > 20000 {
		return fmt.Errorf("%w %v: must be between 20 and 20000 Hz", ErrInvalidFrequency, c.Sound.Frequency)
	}
	if c.Sound.DurationMs < 10 || c.Sound.DurationMs > 2000 {
		return fmt.Errorf("%w: sound.duration_ms %d must be between 10 and 2000", ErrInvalidDuration, c.Sound.DurationMs)
	}
	if c.UI.PulseMs < 0 || c.UI.PulseMs > 5000 {
		return fmt.Errorf("%w: ui.pulse_ms %d must be between 0 and 5000", ErrInvalidDuration, c.UI.PulseMs)
	}
	if _, err := c.Voice.RestartDelayDuration(); err != nil {
		return err
	}
	return nil
}

// RestartDelayDuration parses RestartDelay.
func (v VoiceConfig) RestartDelayDuration() (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(v.RestartDelay))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w %q: use a Go duration such as 250ms", ErrInvalidRestartDelay, v.RestartDelay)
	}
	return d, nil
}

// SoundDuration returns the tone length.
func (s SoundConfig) SoundDuration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// Pulse returns how long the success highlight stays.
func (u UIConfig) Pulse() time.Duration {
	return time.Duration(u.PulseMs) * time.Millisecond
}

// GenerateSampleConfig returns a commented config file documenting every
// setting with its default value.
func GenerateSampleConfig() string {
	return `# tasbih configuration
# Every setting is optional; the values shown are the defaults.

[storage]
# Where the session state is kept: "file" (one JSON document) or "sqlite".
# backend = "file"
# Data directory. Empty uses the user config directory.
# dir = ""

[voice]
# Locale passed to the recognizer.
# locale = "ar-SA"
# Speech-to-text command. It must print one transcript or JSON event per line.
# command = ["vosk-stream", "--json"]
# Pause before restarting a recognition that ended on its own.
# restart_delay = "250ms"

[sound]
# Feedback output: "auto", "command" (paplay/aplay/afplay), "bell" or "none".
# output = "auto"
# frequency = 800
# duration_ms = 100

[ui]
# bubbletint theme IDs used for dark and light mode.
# dark_theme = "dracula"
# light_theme = "github"
# How long the count highlight stays after each increment.
# pulse_ms = 300
`
}

// WriteSampleConfig writes GenerateSampleConfig to path unless a file
// already exists there.
func WriteSampleConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(GenerateSampleConfig()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
