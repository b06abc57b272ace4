package voice

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Environment variables passed to the speech-to-text command.
const (
	EnvLocale         = "TASBIH_LOCALE"
	EnvContinuous     = "TASBIH_CONTINUOUS"
	EnvInterimResults = "TASBIH_INTERIM_RESULTS"
)

// maxLineSize bounds one line of recognizer output.
const maxLineSize = 1 << 20

// ErrAlreadyRunning is returned when starting a recognition that is running.
var ErrAlreadyRunning = errors.New("recognition is already running")

// CommandEngine runs an external speech-to-text program. The program prints
// one event per stdout line: a JSON result event, a JSON error object
// ({"error": "no-speech"}) or a plain transcript, which counts as a single
// final result. The program exiting ends the recognition.
type CommandEngine struct {
	Argv     []string
	LookPath func(string) (string, error)
	Logger   *slog.Logger
}

// NewCommandEngine returns an engine running argv.
func NewCommandEngine(argv []string, logger *slog.Logger) *CommandEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandEngine{Argv: argv, LookPath: exec.LookPath, Logger: logger}
}

func (e *CommandEngine) resolve() (string, error) {
	if len(e.Argv) == 0 || strings.TrimSpace(e.Argv[0]) == "" {
		return "", ErrUnavailable
	}
	lookPath := e.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(e.Argv[0])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return path, nil
}

// Available reports whether a command is configured and found on PATH.
func (e *CommandEngine) Available() bool {
	_, err := e.resolve()
	return err == nil
}

// Create returns a recognition bound to h. The process starts on Start.
func (e *CommandEngine) Create(opts Options, h Handlers) (Recognition, error) {
	path, err := e.resolve()
	if err != nil {
		return nil, err
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &commandRecognition{
		path:     path,
		args:     append([]string(nil), e.Argv[1:]...),
		opts:     opts,
		handlers: h,
		logger:   logger,
	}, nil
}

type commandRecognition struct {
	path     string
	args     []string
	opts     Options
	handlers Handlers
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

func (r *commandRecognition) env() []string {
	return append(os.Environ(),
		EnvLocale+"="+r.opts.Locale,
		EnvContinuous+"="+strconv.FormatBool(r.opts.Continuous),
		EnvInterimResults+"="+strconv.FormatBool(r.opts.InterimResults),
	)
}

func (r *commandRecognition) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, r.path, r.args...)
	cmd.Env = r.env()
	cmd.WaitDelay = time.Second
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return fmt.Errorf("failed to open recognizer output: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("failed to start recognizer: %w", err)
	}

	r.running = true
	r.cancel = cancel
	// A stop unblocks the reader even if a child process keeps stdout open.
	go func() {
		<-ctx.Done()
		_ = stdout.Close()
	}()
	go r.run(ctx, cmd, stdout)
	return nil
}

func (r *commandRecognition) run(ctx context.Context, cmd *exec.Cmd, stdout io.Reader) {
	call(r.handlers.OnStart)

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		if line.Error != nil {
			if r.handlers.OnError != nil {
				r.handlers.OnError(*line.Error)
			}
			continue
		}
		if r.handlers.OnResult != nil {
			r.handlers.OnResult(line.Result)
		}
	}
	// The process would block on a full pipe once nothing reads it.
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		r.logger.Warn("recognizer output unreadable, stopping", "error", err)
		r.mu.Lock()
		r.cancel()
		r.mu.Unlock()
	}

	err := cmd.Wait()
	stopped := ctx.Err() != nil

	r.mu.Lock()
	r.running = false
	r.cancel()
	r.cancel = nil
	r.mu.Unlock()

	switch {
	case stopped:
		r.logger.Debug("recognizer stopped")
	case err != nil:
		if r.handlers.OnError != nil {
			r.handlers.OnError(ErrorEvent{Kind: ErrorProcess, Message: err.Error()})
		}
	}
	call(r.handlers.OnEnd)
}

// Stop terminates the process. OnEnd still fires once it has exited.
func (r *commandRecognition) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
	return nil
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// Line is one parsed line of recognizer output. Exactly one of Result or
// Error is meaningful.
type Line struct {
	Result ResultEvent
	Error  *ErrorEvent
}

type wireLine struct {
	ResultIndex int      `json:"resultIndex"`
	Results     []Result `json:"results"`
	Transcript  *string  `json:"transcript"`
	Final       *bool    `json:"isFinal"`
	Error       string   `json:"error"`
	Message     string   `json:"message"`
}

// ParseLine decodes one line of recognizer output. Blank lines and JSON
// objects that carry neither results nor an error are skipped.
func ParseLine(s string) (Line, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Line{}, false
	}

	if !strings.HasPrefix(s, "{") {
		return Line{Result: finalResult(s)}, true
	}

	var w wireLine
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return Line{Result: finalResult(s)}, true
	}

	switch {
	case w.Error != "":
		return Line{Error: &ErrorEvent{Kind: w.Error, Message: w.Message}}, true
	case len(w.Results) > 0:
		return Line{Result: ResultEvent{ResultIndex: w.ResultIndex, Results: w.Results}}, true
	case w.Transcript != nil:
		final := true
		if w.Final != nil {
			final = *w.Final
		}
		return Line{Result: ResultEvent{Results: []Result{{
			Final:        final,
			Alternatives: []Alternative{{Transcript: *w.Transcript}},
		}}}}, true
	default:
		return Line{}, false
	}
}

func finalResult(text string) ResultEvent {
	return ResultEvent{Results: []Result{{Final: true, Alternatives: []Alternative{{Transcript: text}}}}}
}
