package system

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/reminder"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/storage/sqlite"
)

// newTestContext wires a context around store. The container and
// scheduler share the store, as they do in the binary.
func newTestContext(t *testing.T, store storage.Provider) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	sched := reminder.NewStoreScheduler(store, nil)
	container := state.New(store, state.WithScheduler(sched))
	t.Cleanup(func() {
		container.Close(context.Background())
		store.Close()
	})

	out := &bytes.Buffer{}
	return &cli.Context{
		Store:     store,
		State:     container,
		Reminders: sched,
		Yes:       true,
		Out:       out,
	}, out
}

func newSQLiteStore(t *testing.T) *sqlite.Store {
	t.Helper()
	return sqlite.NewStore(filepath.Join(t.TempDir(), "studylit.db"))
}
