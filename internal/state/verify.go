package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
)

// Report lists what Verify found. Errors are problems Load would answer by
// falling back to seeds; warnings are oddities it tolerates.
type Report struct {
	Errors   []string
	Warnings []string
}

func (r *Report) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// OK reports whether no errors were found.
func (r Report) OK() bool { return len(r.Errors) == 0 }

// Verify inspects the persisted snapshot without loading it. Nothing is
// written. The returned error is only for read failures.
func Verify(ctx context.Context, store storage.Provider) (Report, error) {
	var rep Report

	values := make(map[string]string)
	for _, key := range constants.LogoutKeys {
		v, found, err := store.Get(ctx, key)
		if err != nil {
			return rep, fmt.Errorf("read %s: %w", key, err)
		}
		if found {
			values[key] = v
		} else if key != constants.KeyReminders && key != constants.KeyUsername {
			rep.warnf("%s is not stored yet", key)
		}
	}

	if raw, ok := values[constants.KeyTasks]; ok {
		var tasks []models.Task
		if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
			rep.errorf("%s is not valid JSON: %v", constants.KeyTasks, err)
		} else {
			verifyTasks(&rep, tasks)
		}
	}

	if raw, ok := values[constants.KeyStudySubjects]; ok {
		var subjects []models.StudySubject
		if err := json.Unmarshal([]byte(raw), &subjects); err != nil {
			rep.errorf("%s is not valid JSON: %v", constants.KeyStudySubjects, err)
		} else {
			verifySubjects(&rep, subjects)
		}
	}

	if raw, ok := values[constants.KeyNotificationsEnabled]; ok {
		var b bool
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			rep.errorf("%s is not a boolean: %q", constants.KeyNotificationsEnabled, raw)
		}
	}

	if raw, ok := values[constants.KeyTheme]; ok {
		if t := models.Theme(raw); t != models.ThemeLight && t != models.ThemeDark {
			rep.warnf("unknown theme %q, the default is used", raw)
		}
	}

	if raw, ok := values[constants.KeyReminders]; ok && raw != "" {
		var reminders []models.Reminder
		if err := json.Unmarshal([]byte(raw), &reminders); err != nil {
			rep.errorf("%s is not valid JSON: %v", constants.KeyReminders, err)
		}
	}

	return rep, nil
}

func verifyTasks(rep *Report, tasks []models.Task) {
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			rep.errorf("duplicate task id %s", t.ID)
		}
		seen[t.ID] = true
		if !t.Priority.Valid() {
			rep.warnf("task %s has unknown priority %q", t.ID, t.Priority)
		}
		if t.Status != models.TaskNotStarted && t.Status != models.TaskCompleted {
			rep.warnf("task %s has unknown status %q", t.ID, t.Status)
		}
	}
}

func verifySubjects(rep *Report, subjects []models.StudySubject) {
	seen := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		if seen[s.ID] {
			rep.errorf("duplicate subject id %s", s.ID)
		}
		seen[s.ID] = true
		if s.TotalTime < 0 {
			rep.errorf("subject %s has negative total time", s.ID)
		}
		if s.Ongoing() && s.StartTime == nil {
			rep.warnf("subject %s is ongoing without a start time", s.ID)
		}
		if !s.Ongoing() && s.StartTime != nil {
			rep.warnf("subject %s is paused but has a start time", s.ID)
		}
		if h := s.HistorySeconds(); h != s.TotalTime {
			rep.warnf("subject %s history sums to %ds, total is %ds", s.ID, h, s.TotalTime)
		}
	}
}
