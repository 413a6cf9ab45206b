package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/julianstephens/studylit/internal/logger"
)

// ErrWriterClosed is returned by Flush after Close.
var ErrWriterClosed = errors.New("writer closed")

// Writer applies Set calls to a Provider on a single background goroutine,
// in the order they were enqueued. Values still waiting for a key are
// replaced by newer ones, so the store always converges on the last value
// issued for each key.
type Writer struct {
	store    Provider
	debounce time.Duration
	timeout  time.Duration

	mu       sync.Mutex
	pending  map[string]string
	order    []string
	issued   uint64
	applied  uint64
	failures int
	settled  chan struct{} // closed and replaced whenever applied advances
	closed   bool

	wake  chan struct{}
	hurry chan struct{}
	stop  chan struct{}
	done  chan struct{}
}

type WriterOption func(*Writer)

// WithDebounce holds writes back for d after the first enqueue so bursts of
// mutations collapse into one write per key.
func WithDebounce(d time.Duration) WriterOption {
	return func(w *Writer) { w.debounce = d }
}

// WithWriteTimeout bounds each individual Set call.
func WithWriteTimeout(d time.Duration) WriterOption {
	return func(w *Writer) { w.timeout = d }
}

func NewWriter(store Provider, opts ...WriterOption) *Writer {
	w := &Writer{
		store:   store,
		timeout: 10 * time.Second,
		pending: make(map[string]string),
		settled: make(chan struct{}),
		wake:    make(chan struct{}, 1),
		hurry:   make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run()
	return w
}

// Enqueue schedules entries for writing and returns immediately. Entries of
// one call are written in the given order.
func (w *Writer) Enqueue(entries ...Entry) {
	if len(entries) == 0 {
		return
	}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		logger.Warn("Dropping write after writer closed", "entries", len(entries))
		return
	}
	for _, e := range entries {
		if _, ok := w.pending[e.Key]; !ok {
			w.order = append(w.order, e.Key)
		}
		w.pending[e.Key] = e.Value
	}
	w.issued++
	w.mu.Unlock()

	signal(w.wake)
}

// Flush blocks until everything enqueued before the call has been written
// (or dropped after failing), or ctx is done.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	target := w.issued
	w.mu.Unlock()

	signal(w.hurry)

	for {
		w.mu.Lock()
		if w.applied >= target {
			w.mu.Unlock()
			return nil
		}
		ch := w.settled
		w.mu.Unlock()

		select {
		case <-ch:
		case <-w.done:
			w.mu.Lock()
			ok := w.applied >= target
			w.mu.Unlock()
			if ok {
				return nil
			}
			return ErrWriterClosed
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close writes whatever is pending and stops the background goroutine.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.stop)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Failures reports how many individual writes have failed so far.
func (w *Writer) Failures() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failures
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		hurried := false
		select {
		case <-w.wake:
		case <-w.hurry:
			hurried = true
		case <-w.stop:
			w.drain()
			return
		}

		if w.debounce > 0 && !hurried && w.hasPending() {
			t := time.NewTimer(w.debounce)
			select {
			case <-t.C:
			case <-w.hurry:
				t.Stop()
			case <-w.stop:
				t.Stop()
			}
		}
		w.drain()
	}
}

func (w *Writer) hasPending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.order) > 0
}

func (w *Writer) drain() {
	for {
		w.mu.Lock()
		if len(w.order) == 0 {
			// Flush may be waiting on an enqueue that coalesced into a batch
			// already written.
			w.advanceLocked(w.issued)
			w.mu.Unlock()
			return
		}
		batch := make([]Entry, 0, len(w.order))
		for _, k := range w.order {
			batch = append(batch, Entry{Key: k, Value: w.pending[k]})
		}
		seq := w.issued
		w.pending = make(map[string]string)
		w.order = nil
		w.mu.Unlock()

		failed := 0
		for _, e := range batch {
			ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
			err := w.store.Set(ctx, e.Key, e.Value)
			cancel()
			if err != nil {
				failed++
				logger.Warn("Failed to persist value", "key", e.Key, "error", err)
			}
		}

		w.mu.Lock()
		w.failures += failed
		w.advanceLocked(seq)
		w.mu.Unlock()
	}
}

func (w *Writer) advanceLocked(seq uint64) {
	if seq <= w.applied {
		return
	}
	w.applied = seq
	close(w.settled)
	w.settled = make(chan struct{})
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
