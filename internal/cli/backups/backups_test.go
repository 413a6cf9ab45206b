package backups

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/studylit/internal/backup"
	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/storage/sqlite"
)

func setupTestContext(t *testing.T) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "studylit.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	out := &bytes.Buffer{}
	return &cli.Context{Store: store, Yes: true, Out: out}, store, out
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, _, out := setupTestContext(t)

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: studylit-") {
		t.Errorf("unexpected output: %q", out.String())
	}
	out.Reset()

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestBackupListCmd_Empty(t *testing.T) {
	ctx, _, out := setupTestContext(t)
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	ctx, store, _ := setupTestContext(t)
	bg := context.Background()

	if err := store.Set(bg, "theme", "light"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	info, err := backup.NewManager(store.GetConfigPath()).Create()
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}
	if err := store.Set(bg, "theme", "dark"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := (&BackupRestoreCmd{BackupFile: info.Name()}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	reopened := sqlite.NewStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("load after restore failed: %v", err)
	}
	defer reopened.Close()
	got, _, err := reopened.Get(bg, "theme")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "light" {
		t.Errorf("theme = %q after restore, want light", got)
	}
}

func TestBackupRestoreCmd_Missing(t *testing.T) {
	ctx, _, _ := setupTestContext(t)
	err := (&BackupRestoreCmd{BackupFile: "nope.db"}).Run(ctx)
	if !errors.Is(err, backup.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBackupCmds_RequireSQLite(t *testing.T) {
	ctx := &cli.Context{Store: storage.NewMemoryStore(), Out: &bytes.Buffer{}}
	if err := (&BackupCreateCmd{}).Run(ctx); !errors.Is(err, errSQLiteOnly) {
		t.Errorf("expected errSQLiteOnly, got %v", err)
	}
}
