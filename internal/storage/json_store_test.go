package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONStoreLoadBeforeInit(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "data.json"))
	if err := s.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Load() error = %v, want ErrNotInitialized", err)
	}
	if _, _, err := s.Get(context.Background(), "k"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Get() error = %v, want ErrNotLoaded", err)
	}
}

func TestJSONStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	ctx := context.Background()

	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := s.Set(ctx, "tasks", `[{"id":"t1"}]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, "theme", `"dark"`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	v, ok, err := reopened.Get(ctx, "theme")
	if err != nil || !ok || v != `"dark"` {
		t.Errorf("Get(theme) = %q, %v, %v", v, ok, err)
	}

	if err := reopened.RemoveMany(ctx, []string{"theme"}); err != nil {
		t.Fatalf("RemoveMany() error = %v", err)
	}
	if _, ok, _ := reopened.Get(ctx, "theme"); ok {
		t.Error("theme should be removed")
	}
	if _, ok, _ := reopened.Get(ctx, "tasks"); !ok {
		t.Error("tasks should be kept")
	}
}

func TestJSONStoreInitKeepsExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ctx := context.Background()

	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "username", `"sam"`); err != nil {
		t.Fatal(err)
	}

	again := NewJSONStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if v, ok, _ := again.Get(ctx, "username"); !ok || v != `"sam"` {
		t.Errorf("username = %q, %v after re-init", v, ok)
	}
}

func TestJSONStoreRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"version": 99, "values": {}}`), 0600); err != nil {
		t.Fatal(err)
	}

	err := NewJSONStore(path).Load()
	if err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("Load() error = %v, want version error", err)
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := NewJSONStore(path).Load(); err == nil {
		t.Error("Load() should fail on corrupt file")
	}
}
