package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/xolan/tasbih/internal/storage"
	"github.com/xolan/tasbih/internal/tui"
	"github.com/xolan/tasbih/internal/voice"
	"golang.org/x/term"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	// OpenStore opens the durable store for a backend and data directory
	OpenStore func(backend, dir string) (storage.Store, error)
	Now       func() time.Time
	LookPath  func(file string) (string, error)
	// IsTerminal reports whether stdin and stdout are attached to a terminal
	IsTerminal func() bool
	RunTUI     func(opts tui.Options) error
	// NewEngine builds the speech engine for the configured command
	NewEngine func(argv []string, lookPath func(string) (string, error), logger *slog.Logger) voice.Engine
	// SignalContext returns a context cancelled on interrupt
	SignalContext func() (context.Context, context.CancelFunc)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		OpenStore:  storage.Open,
		Now:        time.Now,
		LookPath:   exec.LookPath,
		IsTerminal: stdioIsTerminal,
		RunTUI:     tui.Run,
		NewEngine:  newCommandEngine,
		SignalContext: func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		},
	}
}

func newCommandEngine(argv []string, lookPath func(string) (string, error), logger *slog.Logger) voice.Engine {
	e := voice.NewCommandEngine(argv, logger)
	e.LookPath = lookPath
	return e
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
