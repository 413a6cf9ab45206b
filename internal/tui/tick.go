package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studylit/internal/timer"
)

type tickMsg struct {
	id int
}

func tick(id int) tea.Cmd {
	return tea.Tick(timer.Interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// showsLiveTime reports whether a running timer is on screen.
func (m Model) showsLiveTime() bool {
	if m.state != StateSubjects {
		return false
	}
	for _, s := range m.data.StudySubjects() {
		if s.Ongoing() {
			return true
		}
	}
	return false
}

// restartTicker drops any tick chain in flight and starts a new one if a
// running timer is visible.
func (m *Model) restartTicker() tea.Cmd {
	m.tickID++
	if !m.showsLiveTime() {
		return nil
	}
	return tick(m.tickID)
}
