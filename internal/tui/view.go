package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/progress"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTasks:
		content = m.styles.Doc.Render(m.taskList.View())
	case StateSubjects:
		content = m.styles.Doc.Render(m.subjectList.View())
	case StateProgress:
		content = m.styles.Doc.Render(m.viewProgress())
	case StateSettings:
		content = m.styles.Doc.Render(m.viewSettings())
	case StateForm:
		content = m.styles.Doc.Render(m.form.View())
	case StateConfirm:
		content = m.viewConfirm()
	}

	var status string
	if m.status != "" {
		status = m.styles.Status.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	current := m.state
	if current == StateForm || current == StateConfirm {
		current = m.previousState
	}

	var tabs []string
	for i, title := range tabTitles {
		if current == SessionState(i) {
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(title))
		}
	}
	if name := m.data.Username(); name != "" {
		tabs = append(tabs, m.styles.InactiveTab.Render("· "+name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewProgress() string {
	goal := int(m.cfg.DailyGoal().Seconds())
	sum := progress.Summarize(m.data.StudySubjects(), m.now(), goal)
	return progress.Render(sum, m.styles.Progress)
}

func (m Model) viewSettings() string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s%s\n", m.styles.Label.Render(label), value)
	}

	name := m.data.Username()
	if name == "" {
		name = "(not set)"
	}
	row("Name", name)
	row("Theme", themeName(m.data.Theme()))
	row("Notifications", onOff(m.data.NotificationsEnabled()))
	if err := m.data.RemindersAvailable(); err != nil {
		row("Reminders", m.styles.Warning.Render("unavailable: "+err.Error()))
	} else {
		row("Reminders", "available")
	}
	row("Daily goal", m.cfg.DailyGoal().String())

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewConfirm() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Danger.Render(m.confirm.prompt),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
