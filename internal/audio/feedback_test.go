package audio

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

type recordingOutput struct {
	mu    sync.Mutex
	plays [][]byte
	err   error
}

func (o *recordingOutput) Play(wav []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.plays = append(o.plays, wav)
	return o.err
}

func (o *recordingOutput) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.plays)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFeedback_DisabledDoesNothing(t *testing.T) {
	created := 0
	out := &recordingOutput{}
	f := NewFeedback(func() bool { return false }, func() (Output, error) {
		created++
		return out, nil
	}, DefaultTone(), discardLogger())

	f.Beep()
	f.Wait()

	if created != 0 {
		t.Errorf("output created %d times while disabled, want 0", created)
	}
	if out.count() != 0 {
		t.Errorf("played %d tones while disabled", out.count())
	}
}

func TestFeedback_CreatesOutputOnceAndReuses(t *testing.T) {
	created := 0
	out := &recordingOutput{}
	f := NewFeedback(func() bool { return true }, func() (Output, error) {
		created++
		return out, nil
	}, DefaultTone(), discardLogger())

	for i := 0; i < 3; i++ {
		f.Beep()
	}
	f.Wait()

	if created != 1 {
		t.Errorf("output created %d times, want 1", created)
	}
	if out.count() != 3 {
		t.Errorf("played %d tones, want 3", out.count())
	}
	if !bytes.HasPrefix(out.plays[0], []byte("RIFF")) {
		t.Error("expected a WAV document to be played")
	}
}

func TestFeedback_ReadsEnabledLive(t *testing.T) {
	enabled := false
	out := &recordingOutput{}
	f := NewFeedback(func() bool { return enabled }, func() (Output, error) { return out, nil }, DefaultTone(), discardLogger())

	f.Beep()
	enabled = true
	f.Beep()
	enabled = false
	f.Beep()
	f.Wait()

	if out.count() != 1 {
		t.Errorf("played %d tones, want 1", out.count())
	}
}

func TestFeedback_ErrorsAreLoggedAtDebug(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	out := &recordingOutput{err: errors.New("device busy")}
	f := NewFeedback(nil, func() (Output, error) { return out, nil }, DefaultTone(), logger)
	f.Beep()
	f.Wait()

	if !strings.Contains(logs.String(), "level=DEBUG") || !strings.Contains(logs.String(), "device busy") {
		t.Errorf("expected debug log with play error, got %q", logs.String())
	}
}

func TestFeedback_OutputCreationFailure(t *testing.T) {
	calls := 0
	f := NewFeedback(nil, func() (Output, error) {
		calls++
		return nil, ErrNoPlayer
	}, DefaultTone(), discardLogger())

	f.Beep()
	f.Beep()
	f.Wait()

	if calls != 1 {
		t.Errorf("output factory called %d times, want 1", calls)
	}
}

func TestFeedback_NilIsSafe(t *testing.T) {
	var f *Feedback
	f.Beep()
	f.Wait()
}
