package cmd

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/tasbih/internal/osutil"
	"github.com/xolan/tasbih/internal/session"
	"github.com/xolan/tasbih/internal/storage"
	"github.com/xolan/tasbih/internal/tui"
)

// testNow is the fixed clock used by command tests.
var testNow = time.Date(2024, 3, 10, 18, 30, 0, 0, time.Local)

type tempPathProvider struct {
	dir string
}

func (p tempPathProvider) UserConfigDir() (string, error) {
	return p.dir, nil
}

func (p tempPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// keepOpen shares one store across command invocations.
type keepOpen struct {
	storage.Store
}

func (keepOpen) Close() error { return nil }

type testEnv struct {
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	store     *storage.MemoryStore
	deps      *Deps
	configDir string
	exitCode  int
	tuiOpts   *tui.Options
}

// setupTest installs deps writing to buffers, a shared memory store, a fixed
// clock and a temp config directory with the sound turned off.
func setupTest(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	osutil.SetProvider(tempPathProvider{dir: dir})
	t.Cleanup(osutil.ResetProvider)

	env := &testEnv{
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		store:     storage.NewMemoryStore(),
		configDir: filepath.Join(dir, osutil.AppName),
	}
	env.writeConfig(t, "[sound]\noutput = \"none\"\n")

	env.deps = &Deps{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Stdin:  strings.NewReader(""),
		Exit:   func(code int) { env.exitCode = code },
		OpenStore: func(backend, dir string) (storage.Store, error) {
			return keepOpen{env.store}, nil
		},
		Now: func() time.Time { return testNow },
		LookPath: func(file string) (string, error) {
			return "", exec.ErrNotFound
		},
		IsTerminal: func() bool { return false },
		RunTUI: func(opts tui.Options) error {
			env.tuiOpts = &opts
			return nil
		},
		NewEngine: newCommandEngine,
		SignalContext: func() (context.Context, context.CancelFunc) {
			return context.WithCancel(context.Background())
		},
	}
	SetDeps(env.deps)
	t.Cleanup(ResetDeps)

	resetYes = false
	t.Cleanup(func() { resetYes = false })
	return env
}

func (e *testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.MkdirAll(e.configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.configDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

// snapshot decodes the stored session.
func (e *testEnv) snapshot(t *testing.T) session.Snapshot {
	t.Helper()
	raw, ok, err := e.store.Get(session.StateKey)
	if err != nil {
		t.Fatalf("Failed to read stored state: %v", err)
	}
	if !ok {
		t.Fatal("Expected a stored state")
	}
	return session.DecodeSnapshot(raw, session.NewID, nil)
}

// reset clears the captured output between invocations.
func (e *testEnv) reset() {
	e.stdout.Reset()
	e.stderr.Reset()
	e.exitCode = 0
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("Expected %q in output, got: %s", want, output)
	}
}

func assertNoError(t *testing.T, env *testEnv) {
	t.Helper()
	if env.exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d (stderr: %s)", env.exitCode, env.stderr.String())
	}
	if strings.Contains(env.stderr.String(), "Error:") {
		t.Errorf("Unexpected error output: %s", env.stderr.String())
	}
}

func assertExitError(t *testing.T, env *testEnv, want string) {
	t.Helper()
	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	assertContains(t, env.stderr.String(), want)
}

// shortContext returns a SignalContext that is cancelled after d, as if the
// user pressed Ctrl-C.
func shortContext(d time.Duration) func() (context.Context, context.CancelFunc) {
	return func() (context.Context, context.CancelFunc) {
		return context.WithTimeout(context.Background(), d)
	}
}
