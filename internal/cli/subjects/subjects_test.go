package subjects

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/validation"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewMemoryStore()
	container := state.New(store)
	t.Cleanup(func() { container.Close(context.Background()) })

	out := &bytes.Buffer{}
	return &cli.Context{Store: store, State: container, Yes: true, Out: out}, out
}

func addSubject(t *testing.T, ctx *cli.Context, title string) models.StudySubject {
	t.Helper()
	if err := (&SubjectAddCmd{Title: title}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	subjects := ctx.State.StudySubjects()
	return subjects[len(subjects)-1]
}

func TestSubjectAddCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	s := addSubject(t, ctx, "Linear Algebra")

	if s.Title != "Linear Algebra" || s.Status != models.SubjectPaused || s.TotalTime != 0 {
		t.Errorf("unexpected subject: %+v", s)
	}
	if !strings.Contains(out.String(), "Added subject: Linear Algebra") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestSubjectAddCmd_Blank(t *testing.T) {
	ctx, _ := setupTestContext(t)
	err := (&SubjectAddCmd{Title: " "}).Run(ctx)
	if !errors.Is(err, validation.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSubjectToggleCmd(t *testing.T) {
	ctx, _ := setupTestContext(t)
	s := addSubject(t, ctx, "Chemistry")

	if err := (&SubjectToggleCmd{ID: s.ID}).Run(ctx); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	got, _ := ctx.State.StudySubject(s.ID)
	if !got.Ongoing() || got.StartTime == nil {
		t.Fatalf("expected running subject, got %+v", got)
	}

	if err := (&SubjectToggleCmd{ID: s.ID}).Run(ctx); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	got, _ = ctx.State.StudySubject(s.ID)
	if got.Ongoing() || got.StartTime != nil || len(got.History) != 1 {
		t.Errorf("expected stopped subject with one session, got %+v", got)
	}
}

func TestSubjectLogCmd(t *testing.T) {
	tests := []struct {
		name    string
		hours   string
		minutes string
		want    int
		wantErr bool
	}{
		{"hours and minutes", "1", "30", 5400, false},
		{"minutes only", "", "45", 2700, false},
		{"zero", "0", "0", 0, true},
		{"not a number", "x", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestContext(t)
			s := addSubject(t, ctx, "History")

			err := (&SubjectLogCmd{ID: s.ID, Hours: tt.hours, Minutes: tt.minutes}).Run(ctx)
			if tt.wantErr {
				if !errors.Is(err, validation.ErrInvalidInput) {
					t.Fatalf("expected invalid input, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("log failed: %v", err)
			}
			got, _ := ctx.State.StudySubject(s.ID)
			if got.TotalTime != tt.want {
				t.Errorf("TotalTime = %d, want %d", got.TotalTime, tt.want)
			}
		})
	}
}

func TestSubjectDeleteCmd(t *testing.T) {
	ctx, _ := setupTestContext(t)
	s := addSubject(t, ctx, "Biology")

	if err := (&SubjectDeleteCmd{ID: s.ID}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := ctx.State.StudySubject(s.ID); ok {
		t.Error("subject still present after delete")
	}
}

func TestSubjectListCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	addSubject(t, ctx, "Physics")
	out.Reset()

	if err := (&SubjectListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	// seed subject carries 3660 seconds
	if !strings.Contains(out.String(), "01:01:00") {
		t.Errorf("seed subject duration missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "Physics") {
		t.Errorf("new subject missing: %q", out.String())
	}
}

func TestSubjectWatchCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	s := addSubject(t, ctx, "Statistics")

	err := (&SubjectWatchCmd{ID: s.ID, For: 10 * time.Millisecond}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "not running") {
		t.Fatalf("expected not running error, got %v", err)
	}

	out.Reset()
	if err := (&SubjectWatchCmd{ID: s.ID, Start: true, For: 10 * time.Millisecond}).Run(ctx); err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	if !strings.Contains(out.String(), "▶ Statistics  00:00:00") {
		t.Errorf("unexpected output: %q", out.String())
	}
	got, _ := ctx.State.StudySubject(s.ID)
	if !got.Ongoing() {
		t.Error("--start should leave the timer running")
	}
}
