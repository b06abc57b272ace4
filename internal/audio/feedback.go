package audio

import (
	"log/slog"
	"sync"
)

// Feedback plays the confirmation tone. The output is created on the first
// Beep and reused afterwards; playback never blocks the caller.
type Feedback struct {
	enabled   func() bool
	newOutput func() (Output, error)
	tone      Tone
	logger    *slog.Logger

	once sync.Once
	out  Output
	wav  []byte
	err  error

	wg sync.WaitGroup
}

// NewFeedback returns a Feedback that plays tone through the output built by
// newOutput. enabled is read on every Beep.
func NewFeedback(enabled func() bool, newOutput func() (Output, error), tone Tone, logger *slog.Logger) *Feedback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Feedback{
		enabled:   enabled,
		newOutput: newOutput,
		tone:      tone,
		logger:    logger,
	}
}

// Beep plays the tone unless sound is disabled. Errors are logged at debug
// level only.
func (f *Feedback) Beep() {
	if f == nil || (f.enabled != nil && !f.enabled()) {
		return
	}

	f.once.Do(f.init)
	if f.err != nil {
		f.logger.Debug("audio output unavailable", "error", f.err)
		return
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		if err := f.out.Play(f.wav); err != nil {
			f.logger.Debug("failed to play tone", "error", err)
		}
	}()
}

// Wait blocks until every started tone has finished playing.
func (f *Feedback) Wait() {
	if f == nil {
		return
	}
	f.wg.Wait()
}

func (f *Feedback) init() {
	if f.newOutput == nil {
		f.out = NopOutput{}
	} else {
		f.out, f.err = f.newOutput()
	}
	if f.err == nil {
		f.wav = f.tone.WAV()
	}
}
