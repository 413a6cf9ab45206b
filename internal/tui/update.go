package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/tui/components/subjectlist"
	"github.com/julianstephens/studylit/internal/tui/components/tasklist"
)

// chromeHeight is the rows taken by tabs, padding, status and help.
const chromeHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.taskList.SetSize(msg.Width-4, msg.Height-chromeHeight)
		m.subjectList.SetSize(msg.Width-4, msg.Height-chromeHeight)
		return m, nil
	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		m.refreshSubjects()
		return m, tick(m.tickID)
	}

	switch m.state {
	case StateForm:
		return m.updateForm(msg)
	case StateConfirm:
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tasklist.AddTaskMsg:
		return m, m.openTaskForm()
	case tasklist.ToggleTaskMsg:
		if t, ok := m.data.Task(msg.ID); ok {
			m.data.UpdateTaskStatus(t.ID, t.Status.Toggle())
			m.refreshTasks()
		}
		return m, nil
	case tasklist.DeleteTaskMsg:
		if t, ok := m.data.Task(msg.ID); ok {
			m.askConfirm(confirmDeleteTask, t.ID, fmt.Sprintf("Delete task %q?", t.Title))
		}
		return m, nil
	case subjectlist.AddSubjectMsg:
		return m, m.openSubjectForm()
	case subjectlist.ToggleSubjectMsg:
		m.data.ToggleStudyStatus(msg.ID)
		m.refreshSubjects()
		return m, m.restartTicker()
	case subjectlist.LogTimeMsg:
		return m, m.openManualTimeForm(msg.ID)
	case subjectlist.DeleteSubjectMsg:
		if s, ok := m.data.StudySubject(msg.ID); ok {
			m.askConfirm(confirmDeleteSubject, s.ID, fmt.Sprintf("Delete subject %q and its history?", s.Title))
		}
		return m, nil
	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case StateSubjects:
		m.subjectList, cmd = m.subjectList.Update(msg)
	case StateSettings:
		if msg, ok := msg.(tea.KeyMsg); ok {
			cmd = m.updateSettings(msg)
		}
	}
	return m, cmd
}

func (m *Model) filtering() bool {
	switch m.state {
	case StateTasks:
		return m.taskList.Filtering()
	case StateSubjects:
		return m.subjectList.Filtering()
	}
	return false
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return true, tea.Quit
	}
	if m.filtering() {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.switchTo((m.state + 1) % SessionState(len(tabTitles)))
		return true, m.restartTicker()
	case key.Matches(msg, m.keys.ShiftTab):
		n := SessionState(len(tabTitles))
		m.switchTo((m.state + n - 1) % n)
		return true, m.restartTicker()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	}
	return false, nil
}

func (m *Model) switchTo(s SessionState) {
	m.state = s
	m.status = ""
	switch s {
	case StateTasks:
		m.refreshTasks()
	case StateSubjects:
		m.refreshSubjects()
	}
}

func (m *Model) updateSettings(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Theme):
		m.data.ToggleTheme()
		m.styles = NewStyles(m.data.Theme())
		m.status = "Theme: " + string(m.data.Theme())
	case key.Matches(msg, m.keys.Notifications):
		m.data.ToggleNotifications()
		m.status = "Notifications " + onOff(m.data.NotificationsEnabled())
	case key.Matches(msg, m.keys.Logout):
		m.askConfirm(confirmLogout, "", "Log out and erase all stored data?")
	}
	return nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return m, m.closeForm()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			m.status = "❌ " + err.Error()
		}
		return m, tea.Batch(cmd, m.closeForm())
	case huh.StateAborted:
		return m, tea.Batch(cmd, m.closeForm())
	}
	return m, cmd
}

func (m *Model) askConfirm(kind confirmKind, id, prompt string) {
	m.confirm = pendingConfirm{kind: kind, id: id, prompt: prompt}
	m.previousState = m.state
	m.state = StateConfirm
	m.tickID++
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Yes):
		pending := m.confirm
		m.confirm = pendingConfirm{}
		m.state = m.previousState
		if cmd := m.runConfirmed(pending); cmd != nil {
			return m, cmd
		}
		return m, m.restartTicker()
	case key.Matches(k, m.keys.No), k.String() == "ctrl+c":
		m.confirm = pendingConfirm{}
		m.state = m.previousState
		return m, m.restartTicker()
	}
	return m, nil
}

func (m *Model) runConfirmed(p pendingConfirm) tea.Cmd {
	switch p.kind {
	case confirmDeleteTask:
		m.data.DeleteTask(p.id)
		if m.reminders != nil {
			if _, err := m.reminders.Cancel(m.ctx, p.id); err != nil {
				logger.Warn("Failed to cancel task reminders", "task", p.id, "error", err)
			}
		}
		m.refreshTasks()
		m.status = "Task deleted"
	case confirmDeleteSubject:
		m.data.DeleteStudySubject(p.id)
		m.refreshSubjects()
		m.status = "Subject deleted"
	case confirmLogout:
		if err := m.data.Logout(m.ctx); err != nil {
			m.status = "❌ Logout failed: " + err.Error()
			return nil
		}
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func themeName(t models.Theme) string {
	if t == models.ThemeDark {
		return "Dark"
	}
	return "Light"
}
