package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/storage"
	"github.com/xolan/tasbih/internal/tally"
)

// DefaultPulse is how long the success pulse stays raised after an increment.
const DefaultPulse = 300 * time.Millisecond

// Beeper plays the confirmation tone. It must not block.
type Beeper interface {
	Beep()
}

// Options configures a Controller. Store is required; the rest default.
type Options struct {
	Store  storage.Store
	Key    string
	Beeper Beeper
	Logger *slog.Logger
	NewID  func() string
	Now    func() time.Time
	Pulse  time.Duration
}

// Controller applies commands to the session state. It is not safe for
// concurrent use; all calls must come from one goroutine.
type Controller struct {
	store  storage.Store
	key    string
	beeper Beeper
	logger *slog.Logger
	newID  func() string
	now    func() time.Time
	pulseD time.Duration

	state    tally.State
	sound    bool
	dark     bool
	deviceID string

	pulse    bool
	pulseSeq uint64
}

// New returns a Controller holding the default session. Call Hydrate to load
// the stored one.
func New(opts Options) *Controller {
	c := &Controller{
		store:  opts.Store,
		key:    opts.Key,
		beeper: opts.Beeper,
		logger: opts.Logger,
		newID:  opts.NewID,
		now:    opts.Now,
		pulseD: opts.Pulse,
	}
	if c.key == "" {
		c.key = StateKey
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.newID == nil {
		c.newID = NewID
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.pulseD <= 0 {
		c.pulseD = DefaultPulse
	}
	c.apply(DefaultSnapshot(c.newID))
	return c
}

// Hydrate loads the stored snapshot. Read failures and malformed documents
// fall back to defaults and are logged, never returned. A freshly generated
// device id is written back so it stays stable across runs.
func (c *Controller) Hydrate() {
	raw, ok, err := c.store.Get(c.key)
	if err != nil {
		c.logger.Warn("failed to read stored state, using defaults", "key", c.key, "error", err)
		c.apply(DefaultSnapshot(c.newID))
		return
	}

	var generated string
	newID := func() string {
		generated = c.newID()
		return generated
	}
	if ok {
		c.apply(DecodeSnapshot(raw, newID, c.logger))
	} else {
		c.apply(DefaultSnapshot(newID))
	}
	if c.deviceID == generated {
		c.persist()
	}
}

func (c *Controller) apply(s Snapshot) {
	c.state = s.State()
	c.sound = s.SoundEnabled
	c.dark = s.DarkMode
	c.deviceID = s.DeviceID
	c.pulse = false
}

// Handle applies cmd. Errors are returned only for invalid input; storage
// failures are logged.
func (c *Controller) Handle(cmd Command) (Result, error) {
	switch cmd := cmd.(type) {
	case Increment:
		e := c.state.Increment(c.state.Selected, c.newID(), c.now())
		c.pulse = true
		c.pulseSeq++
		c.logger.Debug("counted", "phrase", e.PhraseID, "source", cmd.Source.String(), "count", c.state.Count)
		c.persist()
		if c.beeper != nil {
			c.beeper.Beep()
		}
		return Result{Changed: true, Entry: e, ClearPulseAfter: c.pulseD, PulseSeq: c.pulseSeq}, nil

	case Decrement:
		removed, ok := c.state.Decrement()
		if !ok {
			return Result{}, nil
		}
		c.persist()
		return Result{Changed: true, Entry: removed}, nil

	case Reset:
		if c.state.Count == 0 && len(c.state.History) == 0 && len(c.state.Daily) == 0 {
			return Result{}, nil
		}
		if err := storage.Backup(c.store, c.key); err != nil {
			c.logger.Error("failed to back up state before reset", "error", err)
		}
		c.state.ResetAll()
		c.persist()
		return Result{Changed: true}, nil

	case SelectPhrase:
		p, ok := phrase.Lookup(cmd.ID)
		if !ok {
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownPhrase, cmd.ID)
		}
		return c.selectPhrase(p), nil

	case CyclePhrase:
		return c.selectPhrase(phrase.Cycle(c.state.Selected.ID, cmd.Delta)), nil

	case SetTarget:
		if cmd.Target == c.state.Target {
			return Result{}, nil
		}
		if err := c.state.SetTarget(cmd.Target); err != nil {
			return Result{}, fmt.Errorf("%w: %d", err, cmd.Target)
		}
		c.persist()
		return Result{Changed: true}, nil

	case CycleTarget:
		next := tally.CycleTarget(c.state.Target, cmd.Delta)
		if next == c.state.Target {
			return Result{}, nil
		}
		_ = c.state.SetTarget(next)
		c.persist()
		return Result{Changed: true}, nil

	case SetSound:
		if cmd.Enabled == c.sound {
			return Result{}, nil
		}
		c.sound = cmd.Enabled
		c.persist()
		return Result{Changed: true}, nil

	case SetDarkMode:
		if cmd.Enabled == c.dark {
			return Result{}, nil
		}
		c.dark = cmd.Enabled
		c.persist()
		return Result{Changed: true}, nil

	case ClearPulse:
		if cmd.Seq == 0 || cmd.Seq == c.pulseSeq {
			c.pulse = false
		}
		return Result{}, nil

	default:
		return Result{}, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func (c *Controller) selectPhrase(p phrase.Phrase) Result {
	if p.ID == c.state.Selected.ID {
		return Result{}
	}
	c.state.SelectPhrase(p)
	c.persist()
	return Result{Changed: true}
}

// persist writes the full snapshot. Failures are logged, never returned.
func (c *Controller) persist() {
	doc, err := c.Snapshot().Encode()
	if err != nil {
		c.logger.Error("failed to encode state", "error", err)
		return
	}
	if err := c.store.Set(c.key, doc); err != nil {
		c.logger.Error("failed to persist state", "key", c.key, "error", err)
	}
}

// Snapshot returns the persisted form of the current session.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Count:        c.state.Count,
		Target:       c.state.Target,
		SelectedZikr: c.state.Selected.ID,
		History:      append([]tally.HistoryEntry{}, c.state.History...),
		DailyRecords: append([]tally.DailyRecord{}, c.state.Daily...),
		SoundEnabled: c.sound,
		DarkMode:     c.dark,
		DeviceID:     c.deviceID,
	}
}

// State returns a copy of the counter state.
func (c *Controller) State() tally.State {
	s := c.state
	s.History = append([]tally.HistoryEntry{}, c.state.History...)
	s.Daily = append([]tally.DailyRecord{}, c.state.Daily...)
	return s
}

func (c *Controller) Count() int { return c.state.Count }
func (c *Controller) Target() int { return c.state.Target }
func (c *Controller) Selected() phrase.Phrase { return c.state.Selected }
func (c *Controller) SoundEnabled() bool { return c.sound }
func (c *Controller) DarkMode() bool { return c.dark }
func (c *Controller) DeviceID() string { return c.deviceID }
func (c *Controller) Pulse() bool { return c.pulse }
func (c *Controller) TodayCount() int { return tally.TodayCount(c.state.Daily, c.now()) }
func (c *Controller) Now() time.Time { return c.now() }
func (c *Controller) Store() storage.Store { return c.store }
func (c *Controller) StoreKey() string { return c.key }
