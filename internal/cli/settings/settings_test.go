package settings

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
)

func setupTestContext(t *testing.T) (*cli.Context, *storage.MemoryStore, *bytes.Buffer) {
	t.Helper()
	store := storage.NewMemoryStore()
	container := state.New(store)
	t.Cleanup(func() { container.Close(context.Background()) })
	out := &bytes.Buffer{}
	return &cli.Context{Store: store, State: container, Out: out}, store, out
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, _, out := setupTestContext(t)

	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	for _, want := range []string{"Theme:                 light", "Notifications Enabled: true", "Reminders:             unavailable", ":memory:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSettingsCmd_Toggle(t *testing.T) {
	ctx, store, _ := setupTestContext(t)

	if err := (&SettingsCmd{ToggleTheme: true, ToggleNotifications: true}).Run(ctx); err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if ctx.State.Theme() != models.ThemeDark {
		t.Errorf("theme = %s, want dark", ctx.State.Theme())
	}
	if ctx.State.NotificationsEnabled() {
		t.Error("notifications still enabled")
	}

	snap := store.Snapshot()
	if snap[constants.KeyTheme] != "dark" {
		t.Errorf("stored theme = %q, want dark", snap[constants.KeyTheme])
	}
	if snap[constants.KeyNotificationsEnabled] != "false" {
		t.Errorf("stored notificationsEnabled = %q, want false", snap[constants.KeyNotificationsEnabled])
	}
}

func TestSettingsCmd_NoChanges(t *testing.T) {
	ctx, _, out := setupTestContext(t)
	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if !strings.Contains(out.String(), "No changes specified") {
		t.Errorf("unexpected output: %q", out.String())
	}
}
