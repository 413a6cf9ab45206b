package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok:%v err:%v, want not found", ok, err)
	}

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Errorf("Get(k) = %q, %v, %v; want v2, true, nil", v, ok, err)
	}
	if got := len(s.Writes()); got != 2 {
		t.Errorf("Writes() len = %d, want 2", got)
	}
}

func TestMemoryStoreRemoveMany(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for _, k := range []string{"a", "b", "c"} {
		if err := s.Set(ctx, k, k); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.RemoveMany(ctx, []string{"a", "c", "never-set"}); err != nil {
		t.Fatalf("RemoveMany() error = %v", err)
	}

	snap := s.Snapshot()
	if len(snap) != 1 || snap["b"] != "b" {
		t.Errorf("Snapshot() = %v, want only b", snap)
	}
}

func TestMemoryStoreFailures(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	boom := errors.New("boom")

	s.FailGets(boom)
	if _, _, err := s.Get(ctx, "k"); !errors.Is(err, boom) {
		t.Errorf("Get() error = %v, want %v", err, boom)
	}
	s.FailGets(nil)

	s.FailSets(boom)
	if err := s.Set(ctx, "k", "v"); !errors.Is(err, boom) {
		t.Errorf("Set() error = %v, want %v", err, boom)
	}
	if _, ok := s.Snapshot()["k"]; ok {
		t.Error("failed Set should not store the value")
	}
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Set(ctx, "k", "v"); !errors.Is(err, context.Canceled) {
		t.Errorf("Set() error = %v, want context.Canceled", err)
	}
}
