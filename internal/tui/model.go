// Package tui is the interactive terminal front end over a state.Container.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/config"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/reminder"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/tui/components/subjectlist"
	"github.com/julianstephens/studylit/internal/tui/components/tasklist"
)

type SessionState int

const (
	StateTasks SessionState = iota
	StateSubjects
	StateProgress
	StateSettings
	StateForm
	StateConfirm
)

var tabTitles = []string{"Tasks", "Study", "Progress", "Settings"}

type TaskFormModel struct {
	Title    string
	Subtitle string
	At       string
	Priority models.Priority
}

type SubjectFormModel struct {
	Title string
}

type ManualTimeFormModel struct {
	SubjectID string
	Hours     string
	Minutes   string
}

type formKind int

const (
	formTask formKind = iota + 1
	formSubject
	formManualTime
)

type confirmKind int

const (
	confirmDeleteTask confirmKind = iota + 1
	confirmDeleteSubject
	confirmLogout
)

type pendingConfirm struct {
	kind   confirmKind
	id     string
	prompt string
}

type Model struct {
	ctx       context.Context
	data      *state.Container
	reminders *reminder.StoreScheduler
	cfg       *config.Config
	now       func() time.Time

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	styles        Styles
	taskList      tasklist.Model
	subjectList   subjectlist.Model

	form        *huh.Form
	formKind    formKind
	taskForm    *TaskFormModel
	subjectForm *SubjectFormModel
	manualForm  *ManualTimeFormModel
	confirm     pendingConfirm

	tickID   int // only the newest tick chain is honoured
	status   string
	quitting bool
	width    int
	height   int
}

// NewModel builds the UI over a loaded container. reminders may be nil, in
// which case deleted tasks keep their queued reminders until they go stale.
func NewModel(ctx context.Context, data *state.Container, reminders *reminder.StoreScheduler, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	data.Load(ctx)

	return Model{
		ctx:         ctx,
		data:        data,
		reminders:   reminders,
		cfg:         cfg,
		now:         time.Now,
		state:       StateTasks,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		styles:      NewStyles(data.Theme()),
		taskList:    tasklist.New(data.Tasks(), 0, 0),
		subjectList: subjectlist.New(data.StudySubjects(), data.LiveSeconds, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateTasks:
		tk := tasklist.DefaultKeyMap()
		keys = append(keys, tk.Add, tk.Toggle, tk.Delete)
	case StateSubjects:
		sk := subjectlist.DefaultKeyMap()
		keys = append(keys, sk.Add, sk.Toggle, sk.Log, sk.Delete)
	case StateSettings:
		keys = append(keys, m.keys.Theme, m.keys.Notifications, m.keys.Logout)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case StateTasks:
		tk := tasklist.DefaultKeyMap()
		actions = []key.Binding{tk.Add, tk.Toggle, tk.Delete}
	case StateSubjects:
		sk := subjectlist.DefaultKeyMap()
		actions = []key.Binding{sk.Add, sk.Toggle, sk.Log, sk.Delete}
	case StateSettings:
		actions = []key.Binding{m.keys.Theme, m.keys.Notifications, m.keys.Logout}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	if m.showsLiveTime() {
		return tick(m.tickID)
	}
	return nil
}

func (m *Model) refreshTasks() {
	m.taskList.SetTasks(m.data.Tasks())
}

func (m *Model) refreshSubjects() {
	m.subjectList.SetSubjects(m.data.StudySubjects(), m.data.LiveSeconds)
}
