package voice

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xolan/tasbih/internal/phrase"
)

// ErrUnavailable is returned by Start when no speech engine is available.
var ErrUnavailable = errors.New("speech recognition is not available")

// UnavailableNotice is shown to the user when listening cannot start.
const UnavailableNotice = "Voice recognition is not available. Set voice.command in the config file to a speech-to-text program."

// State is the adapter's externally visible state.
type State int

const (
	Idle State = iota
	Listening
)

func (s State) String() string {
	if s == Listening {
		return "listening"
	}
	return "idle"
}

// EventKind identifies an Event.
type EventKind int

const (
	EventStart EventKind = iota
	EventResult
	EventError
	EventEnd
	EventRestart
)

// Event is an engine callback or timer expiry stamped with the generation of
// the recognition that produced it. Events are delivered to Handle on the
// owner's event loop.
type Event struct {
	Kind    EventKind
	Session uint64
	Result  ResultEvent
	Error   ErrorEvent
}

// Config wires an Adapter to its collaborators.
type Config struct {
	Engine Engine
	Locale string
	// Post delivers an event to the goroutine that calls Handle.
	Post func(Event)
	// Selected returns the phrase to match, read on every result.
	Selected func() phrase.Phrase
	// OnMatch is called at most once per result event.
	OnMatch func(phrase.Phrase)
	// Notify shows a user-facing message.
	Notify       func(string)
	Logger       *slog.Logger
	RestartDelay time.Duration
	// After runs fn once d has elapsed on another goroutine. Defaults to
	// time.AfterFunc.
	After func(d time.Duration, fn func())
}

// Adapter keeps a recognition running while the user wants to listen. All
// methods must be called from the owner's event loop.
type Adapter struct {
	cfg Config

	state   State
	desired bool
	rec     Recognition
	session uint64
}

// NewAdapter returns an idle adapter.
func NewAdapter(cfg Config) *Adapter {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.After == nil {
		cfg.After = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	if cfg.Post == nil {
		cfg.Post = func(Event) {}
	}
	return &Adapter{cfg: cfg}
}

// State returns Idle or Listening.
func (a *Adapter) State() State {
	return a.state
}

// Listening reports whether the user currently wants to listen.
func (a *Adapter) Listening() bool {
	return a.desired
}

// Start begins listening. Any previous recognition is stopped and replaced.
func (a *Adapter) Start() error {
	if a.cfg.Engine == nil || !a.cfg.Engine.Available() {
		if a.cfg.Notify != nil {
			a.cfg.Notify(UnavailableNotice)
		}
		return ErrUnavailable
	}

	a.dropRecognition()
	a.session++
	gen := a.session

	opts := Options{Continuous: true, InterimResults: true, Locale: a.cfg.Locale}
	rec, err := a.cfg.Engine.Create(opts, a.handlers(gen))
	if err != nil {
		a.goIdle()
		return fmt.Errorf("failed to create recognition: %w", err)
	}
	a.rec = rec
	a.desired = true

	if err := rec.Start(); err != nil {
		a.goIdle()
		return fmt.Errorf("failed to start recognition: %w", err)
	}
	a.state = Listening
	a.cfg.Logger.Debug("voice listening started", "session", gen, "locale", a.cfg.Locale)
	return nil
}

// Stop stops listening. Calling it while idle is a no-op.
func (a *Adapter) Stop() {
	if a.desired || a.rec != nil {
		a.cfg.Logger.Debug("voice listening stopped", "session", a.session)
	}
	a.goIdle()
}

// Toggle starts listening when idle and stops it otherwise.
func (a *Adapter) Toggle() error {
	if a.desired {
		a.Stop()
		return nil
	}
	return a.Start()
}

// Close releases the recognition. The adapter must not be started again.
func (a *Adapter) Close() {
	a.Stop()
}

func (a *Adapter) goIdle() {
	a.desired = false
	a.state = Idle
	a.dropRecognition()
}

func (a *Adapter) dropRecognition() {
	if a.rec == nil {
		return
	}
	if err := a.rec.Stop(); err != nil {
		a.cfg.Logger.Debug("failed to stop recognition", "error", err)
	}
	a.rec = nil
}

func (a *Adapter) handlers(gen uint64) Handlers {
	post := a.cfg.Post
	return Handlers{
		OnStart:  func() { post(Event{Kind: EventStart, Session: gen}) },
		OnResult: func(r ResultEvent) { post(Event{Kind: EventResult, Session: gen, Result: r}) },
		OnError:  func(e ErrorEvent) { post(Event{Kind: EventError, Session: gen, Error: e}) },
		OnEnd:    func() { post(Event{Kind: EventEnd, Session: gen}) },
	}
}

// Handle processes one event. It must run on the owner's event loop.
func (a *Adapter) Handle(ev Event) {
	switch ev.Kind {
	case EventStart:
		a.cfg.Logger.Debug("recognition started", "session", ev.Session)

	case EventResult:
		// A stop may race with in-flight results; the live flag decides.
		if !a.desired || ev.Session != a.session {
			return
		}
		a.match(ev.Result)

	case EventError:
		if ev.Error.Benign() {
			a.cfg.Logger.Debug("recognition error ignored", "kind", ev.Error.Kind)
			return
		}
		a.cfg.Logger.Warn("recognition error", "kind", ev.Error.Kind, "message", ev.Error.Message)

	case EventEnd:
		if ev.Session != a.session || !a.desired {
			return
		}
		if a.cfg.RestartDelay <= 0 {
			a.restart()
			return
		}
		gen := ev.Session
		post := a.cfg.Post
		a.cfg.After(a.cfg.RestartDelay, func() {
			post(Event{Kind: EventRestart, Session: gen})
		})

	case EventRestart:
		if ev.Session != a.session || !a.desired {
			return
		}
		a.restart()
	}
}

func (a *Adapter) match(r ResultEvent) {
	if a.cfg.Selected == nil || a.cfg.OnMatch == nil {
		return
	}
	text := phrase.Normalize(r.Transcript())
	if text == "" {
		return
	}
	selected := a.cfg.Selected()
	if selected.Matches(text) {
		a.cfg.Logger.Debug("transcript matched", "phrase", selected.ID, "transcript", text)
		a.cfg.OnMatch(selected)
	}
}

// restart starts the ended recognition again on the same handle.
func (a *Adapter) restart() {
	if a.rec == nil {
		a.goIdle()
		return
	}
	if err := a.rec.Start(); err != nil {
		a.cfg.Logger.Warn("failed to restart recognition", "error", err)
		a.goIdle()
		return
	}
	a.state = Listening
	a.cfg.Logger.Debug("recognition restarted", "session", a.session)
}
