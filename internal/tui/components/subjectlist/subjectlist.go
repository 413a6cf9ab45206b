package subjectlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timer"
)

type AddSubjectMsg struct{}

type ToggleSubjectMsg struct {
	ID string
}

type LogTimeMsg struct {
	ID string
}

type DeleteSubjectMsg struct {
	ID string
}

type Item struct {
	Subject models.StudySubject
	Seconds int // live total, including a running session
}

func (i Item) Title() string {
	if i.Subject.Ongoing() {
		return "▶ " + i.Subject.Title
	}
	return "❚❚ " + i.Subject.Title
}

func (i Item) Description() string {
	state := "paused"
	if i.Subject.Ongoing() {
		state = "studying"
	}
	return timer.FormatDuration(i.Seconds) + " · " + state
}

func (i Item) FilterValue() string { return i.Subject.Title }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Log    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space", "start/stop"),
		),
		Log: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "log time"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

// New builds the list. live reports a subject's total including any running
// session.
func New(subjects []models.StudySubject, live func(models.StudySubject) int, width, height int) Model {
	l := list.New(items(subjects, live), list.NewDefaultDelegate(), width, height)
	l.Title = "Study"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Log, keys.Delete}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func items(subjects []models.StudySubject, live func(models.StudySubject) int) []list.Item {
	out := make([]list.Item, len(subjects))
	for i, s := range subjects {
		out[i] = Item{Subject: s, Seconds: live(s)}
	}
	return out
}

// SetSubjects replaces the items and keeps the cursor where it was.
func (m *Model) SetSubjects(subjects []models.StudySubject, live func(models.StudySubject) int) {
	m.list.SetItems(items(subjects, live))
}

func (m Model) Selected() (models.StudySubject, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Subject, ok
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddSubjectMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if s, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleSubjectMsg{ID: s.ID} }
			}
		case key.Matches(msg, m.keys.Log):
			if s, ok := m.Selected(); ok {
				return m, func() tea.Msg { return LogTimeMsg{ID: s.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if s, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteSubjectMsg{ID: s.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No study subjects yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
