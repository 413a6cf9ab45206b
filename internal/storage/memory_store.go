package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps everything in a map. It backs tests and `--config :memory:`.
type MemoryStore struct {
	mu     sync.Mutex
	data   map[string]string
	writes []Entry
	getErr error
	setErr error
	onSet  func(Entry)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Load() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) GetConfigPath() string { return ":memory:" }

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if s.setErr != nil {
		err := s.setErr
		s.mu.Unlock()
		return err
	}
	s.data[key] = value
	e := Entry{Key: key, Value: value}
	s.writes = append(s.writes, e)
	hook := s.onSet
	s.mu.Unlock()

	if hook != nil {
		hook(e)
	}
	return nil
}

func (s *MemoryStore) RemoveMany(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

// FailGets makes every subsequent Get return err. nil restores normal behaviour.
func (s *MemoryStore) FailGets(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

// FailSets makes every subsequent Set and RemoveMany return err.
func (s *MemoryStore) FailSets(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

// OnSet registers a hook called after each successful Set.
func (s *MemoryStore) OnSet(fn func(Entry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSet = fn
}

// Writes returns every successful Set in the order it was applied.
func (s *MemoryStore) Writes() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.writes))
	copy(out, s.writes)
	return out
}

// Snapshot returns a copy of the current contents.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

var _ Provider = (*MemoryStore)(nil)
