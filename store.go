package quex

import (
	"github.com/invopop/jsonschema"

	"github.com/davidroman0O/quex/store"
)

// Store is the state container returned by New. It owns the state cell, the
// listeners and the enhancers applied to every usecase built from it.
type Store[S any] struct {
	cell      *store.Cell[S]
	updater   Updater[S]
	enhancers []Enhancer[S]
	logger    Logger
}

// Option is a function that configures a Store
type Option[S any] func(*Store[S])

// WithUpdater replaces the default merge used to apply patches
func WithUpdater[S any](updater Updater[S]) Option[S] {
	return func(s *Store[S]) {
		s.updater = updater
	}
}

// WithEnhancer adds enhancers. The first one registered is the outermost.
func WithEnhancer[S any](enhancers ...Enhancer[S]) Option[S] {
	return func(s *Store[S]) {
		for _, e := range enhancers {
			if e != nil {
				s.enhancers = append(s.enhancers, e)
			}
		}
	}
}

// WithLogger sets the logger used by the runner
func WithLogger[S any](logger Logger) Option[S] {
	return func(s *Store[S]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store holding initial.
func New[S any](initial S, opts ...Option[S]) *Store[S] {
	s := &Store[S]{
		logger: NewDefaultLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.cell = store.NewCell(initial, store.WithUpdater(s.updater))
	return s
}

// GetState returns the current state.
func (s *Store[S]) GetState() S {
	return s.cell.Get()
}

// SetState merges patch into the state through the updater and returns the
// result. Listeners are not notified. If the updater fails the state is
// left untouched and returned as is; use SetStateE to see the error.
func (s *Store[S]) SetState(patch S) S {
	return s.cell.Set(patch)
}

// SetStateE is SetState with the updater error surfaced, wrapped in
// store.ErrMergeFailed.
func (s *Store[S]) SetStateE(patch S) (S, error) {
	return s.cell.SetE(patch)
}

// ReplaceState swaps the whole state, bypassing the updater. Listeners are
// not notified.
func (s *Store[S]) ReplaceState(state S) S {
	return s.cell.Replace(state)
}

// Snapshot returns a deep copy of the current state.
func (s *Store[S]) Snapshot() S {
	return s.cell.Snapshot()
}

// Subscribe registers listener and returns the function that removes it.
func (s *Store[S]) Subscribe(listener Listener[S]) func() {
	return s.cell.Subscribe(listener)
}

// ListenerCount returns the number of registered listeners.
func (s *Store[S]) ListenerCount() int {
	return s.cell.ListenerCount()
}

// Schema returns the JSON Schema of the state type.
func (s *Store[S]) Schema() *jsonschema.Schema {
	return s.cell.Schema()
}

// Logger returns the logger of the store.
func (s *Store[S]) Logger() Logger {
	return s.logger
}

// Usecase creates an empty usecase named name. Tasks receive the run
// parameter untyped; use NewUsecase for a typed parameter.
func (s *Store[S]) Usecase(name string) *Usecase[S, any] {
	return NewUsecase[S, any](s, name)
}

// Dispatch is an alias of Usecase.
func (s *Store[S]) Dispatch(name string) *Usecase[S, any] {
	return s.Usecase(name)
}
