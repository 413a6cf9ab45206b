package tasks

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/reminder"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/validation"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewMemoryStore()
	sched := reminder.NewStoreScheduler(store, reminder.PrintNotifier{W: &bytes.Buffer{}})
	container := state.New(store, state.WithScheduler(sched))
	t.Cleanup(func() { container.Close(context.Background()) })

	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store:     store,
		State:     container,
		Reminders: sched,
		Yes:       true,
		Out:       out,
	}
	return ctx, out
}

func TestTaskAddCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := &TaskAddCmd{Title: "Read chapter 3", Subtitle: "pages 40-62", Priority: "high"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	tasks := ctx.State.Tasks()
	// seed task plus the new one
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	added := tasks[1]
	if added.Title != "Read chapter 3" || added.Priority != models.PriorityHigh || added.Status != models.TaskNotStarted {
		t.Errorf("unexpected task: %+v", added)
	}
	if !strings.Contains(out.String(), "Added task: Read chapter 3") {
		t.Errorf("unexpected output: %q", out.String())
	}

	pending, err := ctx.Reminders.Pending(context.Background())
	if err != nil {
		t.Fatalf("pending failed: %v", err)
	}
	var found bool
	for _, r := range pending {
		if r.TaskID == added.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("no reminder scheduled for %s", added.ID)
	}
}

func TestTaskAddCmd_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cmd  TaskAddCmd
	}{
		{"blank title", TaskAddCmd{Title: "  ", Priority: "Low"}},
		{"past time", TaskAddCmd{Title: "x", At: "2001-01-01T10:00:00Z", Priority: "Low"}},
		{"bad priority", TaskAddCmd{Title: "x", Priority: "urgent"}},
		{"bad time", TaskAddCmd{Title: "x", At: "tomorrowish", Priority: "Low"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestContext(t)
			err := tt.cmd.Run(ctx)
			if !errors.Is(err, validation.ErrInvalidInput) {
				t.Fatalf("expected invalid input error, got %v", err)
			}
			if n := len(ctx.State.Tasks()); n != 1 {
				t.Errorf("expected only the seed task, got %d tasks", n)
			}
		})
	}
}

func TestTaskAddCmd_DefaultTime(t *testing.T) {
	fixed := time.Now().Add(time.Hour)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })

	ctx, _ := setupTestContext(t)
	if err := (&TaskAddCmd{Title: "later", Priority: "Low"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	tasks := ctx.State.Tasks()
	got := tasks[len(tasks)-1].Time
	if want := fixed.Add(5 * time.Minute); !got.Equal(want) {
		t.Errorf("time = %v, want %v", got, want)
	}
}

func TestTaskDoneAndUndo(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := (&TaskAddCmd{Title: "quiz", Priority: "Low"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	id := ctx.State.Tasks()[1].ID

	if err := (&TaskDoneCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	if task, _ := ctx.State.Task(id); !task.Completed() {
		t.Errorf("task not completed: %+v", task)
	}

	if err := (&TaskUndoCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if task, _ := ctx.State.Task(id); task.Completed() {
		t.Errorf("task still completed: %+v", task)
	}
}

func TestTaskDoneCmd_UnknownID(t *testing.T) {
	ctx, _ := setupTestContext(t)
	err := (&TaskDoneCmd{ID: "nope"}).Run(ctx)
	if !errors.Is(err, cli.ErrUnknownID) {
		t.Errorf("expected ErrUnknownID, got %v", err)
	}
}

func TestTaskDeleteCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := (&TaskAddCmd{Title: "essay", Priority: "Medium"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	id := ctx.State.Tasks()[1].ID

	if err := (&TaskDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := ctx.State.Task(id); ok {
		t.Error("task still present after delete")
	}
	if !strings.Contains(out.String(), "Deleted task: essay") {
		t.Errorf("unexpected output: %q", out.String())
	}

	pending, err := ctx.Reminders.Pending(context.Background())
	if err != nil {
		t.Fatalf("pending failed: %v", err)
	}
	for _, r := range pending {
		if r.TaskID == id {
			t.Errorf("reminder for deleted task still pending: %+v", r)
		}
	}
}

func TestTaskListCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := (&TaskAddCmd{Title: "flashcards", Priority: "Low"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	seedID := ctx.State.Tasks()[0].ID
	if err := (&TaskDoneCmd{ID: seedID}).Run(ctx); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	out.Reset()

	if err := (&TaskListCmd{Pending: true}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "flashcards") {
		t.Errorf("pending task missing: %q", out.String())
	}
	if strings.Contains(out.String(), "[x]") {
		t.Errorf("completed task listed with --pending: %q", out.String())
	}
}
