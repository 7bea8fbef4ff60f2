package store

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/sasha-s/go-deadlock"
)

// Listener receives the state after every publish together with the event
// that caused it and the error of a failed run, if any.
type Listener[S any] func(state S, event string, err error)

// Updater computes the next state from the current one and a patch.
type Updater[S any] func(current, patch S) (S, error)

// CellOption configures a Cell.
type CellOption[S any] func(*Cell[S])

// WithUpdater replaces the default Merge updater. Nil is ignored.
func WithUpdater[S any](updater Updater[S]) CellOption[S] {
	return func(c *Cell[S]) {
		if updater != nil {
			c.updater = updater
		}
	}
}

type subscription[S any] struct {
	id       uint64
	listener Listener[S]
}

// Cell is a threadsafe holder for a single state value with an ordered set
// of listeners. Writes go through the updater; publishing is explicit.
type Cell[S any] struct {
	mu        deadlock.RWMutex
	state     S
	updater   Updater[S]
	listeners []subscription[S]
	nextID    uint64
}

// NewCell constructs a cell holding initial.
func NewCell[S any](initial S, opts ...CellOption[S]) *Cell[S] {
	c := &Cell[S]{
		state:   initial,
		updater: Merge[S],
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the current state.
func (c *Cell[S]) Get() S {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Set applies patch through the updater and returns the new state.
// If the updater fails the state is left untouched and returned as is.
func (c *Cell[S]) Set(patch S) S {
	next, _ := c.SetE(patch)
	return next
}

// SetE is Set with the updater error surfaced, wrapped in ErrMergeFailed.
func (c *Cell[S]) SetE(patch S) (S, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.updater(c.state, patch)
	if err != nil {
		return c.state, fmt.Errorf("%w: %w", ErrMergeFailed, err)
	}
	c.state = next
	return c.state, nil
}

// Replace swaps the whole state, bypassing the updater.
func (c *Cell[S]) Replace(state S) S {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	return c.state
}

// Snapshot returns a deep copy of the current state.
func (c *Cell[S]) Snapshot() S {
	return Clone(c.Get())
}

// Subscribe registers listener and returns a function removing exactly that
// registration. Calling the returned function more than once is a no-op.
func (c *Cell[S]) Subscribe(listener Listener[S]) func() {
	if listener == nil {
		return func() {}
	}

	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, subscription[S]{id: id, listener: listener})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.listeners {
			if sub.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (c *Cell[S]) ListenerCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.listeners)
}

// Publish hands the current state to every listener in registration order.
// Listeners run outside the lock and may call back into the cell. A panicking
// listener does not stop the others; the recovered panics are returned.
func (c *Cell[S]) Publish(event string, err error) error {
	c.mu.RLock()
	state := c.state
	listeners := make([]subscription[S], len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.RUnlock()

	var errs []error
	for _, sub := range listeners {
		if perr := notify(sub.listener, state, event, err); perr != nil {
			errs = append(errs, perr)
		}
	}
	return errors.Join(errs...)
}

func notify[S any](listener Listener[S], state S, event string, err error) (perr error) {
	defer func() {
		if r := recover(); r != nil {
			perr = &ListenerPanicError{Event: event, Value: r, Stack: debug.Stack()}
		}
	}()
	listener(state, event, err)
	return nil
}

// DetectDeadlocks tunes the process-wide lock-order and timeout detection of
// go-deadlock used by every Cell. A zero timeout disables detection.
func DetectDeadlocks(timeout time.Duration) {
	if timeout <= 0 {
		deadlock.Opts.Disable = true
		return
	}
	deadlock.Opts.Disable = false
	deadlock.Opts.DeadlockTimeout = timeout
}
