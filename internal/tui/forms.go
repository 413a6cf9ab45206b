package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timer"
	"github.com/julianstephens/studylit/internal/validation"
)

func (m Model) formTheme() *huh.Theme {
	if m.data.Theme() == models.ThemeDark {
		return huh.ThemeCharm()
	}
	return huh.ThemeBase()
}

func (m *Model) openTaskForm() tea.Cmd {
	m.taskForm = &TaskFormModel{Priority: models.PriorityMedium}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.taskForm.Title).
				Validate(validation.ValidateTaskTitle),
			huh.NewInput().
				Title("Subtitle").
				Value(&m.taskForm.Subtitle),
			huh.NewInput().
				Title("Reminder").
				Description("HH:MM or YYYY-MM-DD HH:MM. Leave empty for five minutes from now.").
				Value(&m.taskForm.At).
				Validate(func(s string) error {
					_, err := m.taskTime(s)
					return err
				}),
			huh.NewSelect[models.Priority]().
				Title("Priority").
				Options(huh.NewOptions(models.Priorities...)...).
				Value(&m.taskForm.Priority),
		),
	).WithTheme(m.formTheme())
	return m.openForm(formTask)
}

func (m *Model) openSubjectForm() tea.Cmd {
	m.subjectForm = &SubjectFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Value(&m.subjectForm.Title).
				Validate(validation.ValidateSubjectTitle),
		),
	).WithTheme(m.formTheme())
	return m.openForm(formSubject)
}

func (m *Model) openManualTimeForm(subjectID string) tea.Cmd {
	s, ok := m.data.StudySubject(subjectID)
	if !ok {
		return nil
	}
	m.manualForm = &ManualTimeFormModel{SubjectID: subjectID}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Log time").
				Description(s.Title),
			huh.NewInput().
				Title("Hours").
				Value(&m.manualForm.Hours),
			huh.NewInput().
				Title("Minutes").
				Value(&m.manualForm.Minutes).
				Validate(func(string) error {
					_, err := validation.ParseManualTime(m.manualForm.Hours, m.manualForm.Minutes)
					return err
				}),
		),
	).WithTheme(m.formTheme())
	return m.openForm(formManualTime)
}

func (m *Model) openForm(kind formKind) tea.Cmd {
	m.formKind = kind
	m.previousState = m.state
	m.state = StateForm
	m.tickID++
	return m.form.Init()
}

func (m *Model) closeForm() tea.Cmd {
	m.form = nil
	m.formKind = 0
	m.state = m.previousState
	return m.restartTicker()
}

func (m Model) taskTime(s string) (time.Time, error) {
	current := m.now()
	at, err := validation.ParseTaskTime(s, current.Add(constants.DefaultTaskDueAhead), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if err := validation.ValidateTaskTime(at, current); err != nil {
		return time.Time{}, err
	}
	return at, nil
}

func (m *Model) submitForm() error {
	switch m.formKind {
	case formTask:
		return m.submitTask()
	case formSubject:
		return m.submitSubject()
	case formManualTime:
		return m.submitManualTime()
	}
	return nil
}

func (m *Model) submitTask() error {
	at, err := m.taskTime(m.taskForm.At)
	if err != nil {
		return err
	}
	draft := models.TaskDraft{
		Title:    m.taskForm.Title,
		Subtitle: m.taskForm.Subtitle,
		Time:     at,
		Priority: m.taskForm.Priority,
	}
	if err := validation.ValidateTaskDraft(draft, m.now()); err != nil {
		return err
	}

	task := m.data.AddTask(draft)
	m.data.ScheduleTaskReminder(m.ctx, task)
	m.refreshTasks()
	m.status = "Added task: " + task.Title
	return nil
}

func (m *Model) submitSubject() error {
	if err := validation.ValidateSubjectTitle(m.subjectForm.Title); err != nil {
		return err
	}
	s, ok := m.data.AddStudySubject(m.subjectForm.Title)
	if !ok {
		return fmt.Errorf("subject was not added")
	}
	m.refreshSubjects()
	m.status = "Added subject: " + s.Title
	return nil
}

func (m *Model) submitManualTime() error {
	seconds, err := validation.ParseManualTime(m.manualForm.Hours, m.manualForm.Minutes)
	if err != nil {
		return err
	}
	s, ok := m.data.StudySubject(m.manualForm.SubjectID)
	if !ok {
		return fmt.Errorf("subject no longer exists")
	}
	m.data.AddManualTime(s.ID, seconds)
	m.refreshSubjects()
	m.status = fmt.Sprintf("Logged %s for %s", timer.FormatDuration(seconds), s.Title)
	return nil
}
