package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/xolan/tasbih/internal/audio"
	"github.com/xolan/tasbih/internal/config"
	"github.com/xolan/tasbih/internal/session"
	"github.com/xolan/tasbih/internal/storage"
)

// Setting keys shared by flags, environment variables and the config file.
const (
	keyDataDir = "storage.dir"
	keyBackend = "storage.backend"
	keyVerbose = "verbose"
	keyLogFile = "log-file"

	envDataDir = "TASBIH_DATA_DIR"
	envBackend = "TASBIH_BACKEND"
)

// settings overlays flags and environment variables on the config file.
var settings = viper.New()

func init() {
	_ = settings.BindEnv(keyDataDir, envDataDir)
	_ = settings.BindEnv(keyBackend, envBackend)
}

// app bundles what a command needs to act on the stored session.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	store    storage.Store
	session  *session.Controller
	feedback *audio.Feedback
	closeLog func()
}

// loadConfig reads the config file and applies flag and env overrides.
func loadConfig() (config.Config, string, error) {
	path, err := config.GetConfigPath()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("failed to determine config file location: %w", err)
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return config.Config{}, path, err
	}
	applyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, path, err
	}
	return cfg, path, nil
}

// CheckConfig loads the configuration and returns the first problem found.
func CheckConfig() error {
	_, _, err := loadConfig()
	return err
}

func applyOverrides(cfg *config.Config) {
	if dir := strings.TrimSpace(settings.GetString(keyDataDir)); dir != "" {
		cfg.Storage.Dir = dir
	}
	if backend := strings.TrimSpace(settings.GetString(keyBackend)); backend != "" {
		cfg.Storage.Backend = backend
	}
	cfg.Normalize()
}

// newLogger builds the text logger. Output goes to w unless --log-file is set.
func newLogger(w io.Writer) (*slog.Logger, func(), error) {
	level := slog.LevelWarn
	if settings.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}

	closeFn := func() {}
	if path := settings.GetString(keyLogFile); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

// openApp loads the configuration, opens the store and hydrates the session.
// Logs go to logTo unless a log file is configured.
func openApp(logTo io.Writer) (*app, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(logTo)
	if err != nil {
		return nil, err
	}

	store, err := deps.OpenStore(cfg.Storage.Backend, cfg.Storage.Dir)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Backend, err)
	}

	a := &app{cfg: cfg, logger: logger, store: store, closeLog: closeLog}

	tone := audio.DefaultTone()
	tone.Frequency = cfg.Sound.Frequency
	tone.Duration = cfg.Sound.SoundDuration()
	a.feedback = audio.NewFeedback(
		func() bool { return a.session != nil && a.session.SoundEnabled() },
		func() (audio.Output, error) { return audio.NewOutput(cfg.Sound.Output, deps.Stderr, deps.LookPath) },
		tone,
		logger,
	)

	a.session = session.New(session.Options{
		Store:  store,
		Beeper: a.feedback,
		Logger: logger,
		Now:    deps.Now,
		Pulse:  cfg.UI.Pulse(),
	})
	a.session.Hydrate()
	return a, nil
}

// mustOpenApp is openApp for commands: failures are reported and exit 1.
// It returns nil after a failure.
func mustOpenApp() *app {
	a, err := openApp(deps.Stderr)
	if err != nil {
		exitWithError("Failed to open the tasbih session", err,
			"Check the config file with 'tasbih config' and that the data directory is writable")
		return nil
	}
	return a
}

// Close waits for pending tones and releases the store.
func (a *app) Close() {
	a.feedback.Wait()
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", "error", err)
	}
	a.closeLog()
}
