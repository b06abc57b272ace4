package session

import (
	"context"
	"time"
)

// Loop runs posted functions one at a time on the goroutine that calls Run.
// Engine callbacks and timers post into it so state is only ever touched from
// that goroutine.
type Loop struct {
	events chan func()
	done   chan struct{}
}

// NewLoop returns a Loop whose queue holds buffer pending functions.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		events: make(chan func(), buffer),
		done:   make(chan struct{}),
	}
}

// Post queues fn. It blocks while the queue is full and returns false once
// the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// After posts fn once d has elapsed. The returned timer can cancel it.
func (l *Loop) After(d time.Duration, fn func()) *time.Timer {
	return time.AfterFunc(d, func() { l.Post(fn) })
}

// Run executes posted functions until ctx is done. It must be called once.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.events:
			fn()
		}
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
