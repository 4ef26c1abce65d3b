package client

import (
	"context"
	"sync"
)

// State is a snapshot of an in-flight or settled fetch.
type State[T any] struct {
	Data    *T
	Loading bool
	Err     error
}

// Producer loads one value. It is expected to block on network I/O.
type Producer[T any] func(ctx context.Context) (T, error)

// Fetcher tracks the lifecycle of repeated asynchronous loads of a single
// value. Each Reload supersedes any load still in flight: a stale producer
// that resolves late never overwrites a newer result, and nothing is
// committed after Close. Producers are not aborted at the network level;
// their results are discarded on arrival.
//
// There is no retry, timeout, or de-duplication. Every Reload fires an
// independent request regardless of one already in flight.
type Fetcher[T any] struct {
	mu       sync.Mutex
	produce  Producer[T]
	onChange func(State[T])
	state    State[T]
	gen      uint64
	closed   bool
}

func NewFetcher[T any](produce Producer[T]) *Fetcher[T] {
	return &Fetcher[T]{
		produce: produce,
		state:   State[T]{Loading: true},
	}
}

// OnChange registers a callback invoked (with the fetcher unlocked state
// already copied) every time the state changes. Must be set before the
// first Reload.
func (f *Fetcher[T]) OnChange(fn func(State[T])) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = fn
}

// State returns a copy of the current state.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Reload resets the state to loading and starts the producer on a new
// goroutine. Only the most recent Reload is allowed to commit its result.
func (f *Fetcher[T]) Reload(ctx context.Context) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.gen++
	gen := f.gen
	f.state = State[T]{Loading: true}
	notify := f.onChange
	state := f.state
	f.mu.Unlock()

	if notify != nil {
		notify(state)
	}

	go func() {
		data, err := f.produce(ctx)
		f.commit(gen, data, err)
	}()
}

func (f *Fetcher[T]) commit(gen uint64, data T, err error) {
	f.mu.Lock()
	if f.closed || gen != f.gen {
		// Stale invocation: superseded by a newer Reload or the fetcher
		// was closed while the producer was in flight.
		f.mu.Unlock()
		return
	}
	if err != nil {
		f.state = State[T]{Err: err}
	} else {
		f.state = State[T]{Data: &data}
	}
	notify := f.onChange
	state := f.state
	f.mu.Unlock()

	if notify != nil {
		notify(state)
	}
}

// Close detaches the fetcher. In-flight producers run to completion but
// their results are dropped and no callback fires again.
func (f *Fetcher[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}
