package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/xolan/tasbih/internal/storage"
)

var fixedNow = time.Date(2024, 3, 10, 18, 30, 0, 0, time.Local)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type countingBeeper struct {
	mu    sync.Mutex
	beeps int
}

func (b *countingBeeper) Beep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.beeps++
}

func (b *countingBeeper) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.beeps
}

// failingStore wraps a store and fails Get and/or Set on demand.
type failingStore struct {
	storage.Store
	getErr error
	setErr error
	sets   int
}

func (s *failingStore) Get(key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.Store.Get(key)
}

func (s *failingStore) Set(key, value string) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	return s.Store.Set(key, value)
}

var errDisk = errors.New("disk full")

func newTestController(t *testing.T, store storage.Store) (*Controller, *countingBeeper, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	beeper := &countingBeeper{}
	c := New(Options{
		Store:  store,
		Beeper: beeper,
		Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		NewID:  sequentialIDs(),
		Now:    func() time.Time { return fixedNow },
	})
	return c, beeper, &logs
}
