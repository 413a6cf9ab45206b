package postgres

import (
	"context"
	"os"
	"testing"
)

// TestStore_Integration runs against a real database.
// Example: POSTGRES_TEST_URL="postgres://studylit_user@localhost:5432/studylit_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	keys := []string{"it_tasks", "it_theme"}
	defer store.RemoveMany(ctx, keys)

	if err := store.Set(ctx, "it_tasks", "[]"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, "it_tasks", `[{"id":"t1"}]`); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	if err := store.Set(ctx, "it_theme", `"dark"`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, ok, err := store.Get(ctx, "it_tasks")
	if err != nil || !ok || v != `[{"id":"t1"}]` {
		t.Errorf("Get() = %q, %v, %v", v, ok, err)
	}

	if err := store.RemoveMany(ctx, keys); err != nil {
		t.Fatalf("RemoveMany() error = %v", err)
	}
	if _, ok, _ := store.Get(ctx, "it_theme"); ok {
		t.Error("it_theme should be removed")
	}

	if pending, err := store.PendingMigrations(); err != nil || pending != 0 {
		t.Errorf("PendingMigrations() = %d, %v", pending, err)
	}
}
