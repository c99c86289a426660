package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"habitbox/internal/config"
	"habitbox/internal/goal"
	"habitbox/internal/habit"
	"habitbox/internal/logging"
	"habitbox/internal/timeline"
)

type mode int

const (
	modeList mode = iota
	modeAddHabit
	modeAddPin
	modeAddGoal
)

type pane int

const (
	paneHabits pane = iota
	paneGoals
)

type Model struct {
	habits      *habit.Store
	goals       *goal.Store
	cfg         config.Config
	log         *log.Logger
	now         func() time.Time
	timeline    timeline.Mode
	cursor      int
	goalCursor  int
	pane        pane
	goalsOpen   bool
	mode        mode
	input       textinput.Model
	pendingName string
	status      string
	confirmDel  bool
	pendingDel  *habit.Habit
}

type Option func(*Model)

// WithClock replaces the wall clock used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

func New(habits *habit.Store, goals *goal.Store, cfg config.Config, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "New habit..."
	ti.CharLimit = 128
	ti.Width = 40

	mode, err := timeline.ParseMode(cfg.DefaultTimeline)
	if err != nil {
		mode = timeline.Week
	}

	m := Model{
		habits:   habits,
		goals:    goals,
		cfg:      cfg,
		log:      logging.Discard(),
		now:      time.Now,
		timeline: mode,
		input:    ti,
		mode:     modeList,
		status:   fmt.Sprintf("Press '%s' to add, space to mark today, '%s' for goals.", cfg.Keys.Add, cfg.Keys.Goals),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func Run(habits *habit.Store, goals *goal.Store, cfg config.Config, opts ...Option) error {
	program := tea.NewProgram(New(habits, goals, cfg, opts...))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) today() time.Time {
	return timeline.Day(m.now())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAddHabit, modeAddGoal:
		return m.updateAddMode(key, msg)
	case modeAddPin:
		return m.updatePinPrompt(key)
	}
	if m.pane == paneGoals {
		return m.updateGoalsPane(key)
	}
	return m.updateListMode(key)
}

func (m Model) startAdd(md mode, placeholder, status string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.status = status
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) backToList(status string) Model {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
	m.pendingName = ""
	m.status = status
	return m
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		return m.backToList("Cancelled"), nil
	case m.cfg.Keys.Confirm:
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			if m.mode == modeAddGoal {
				m.status = "Goal cannot be empty"
			} else {
				m.status = "Name cannot be empty"
			}
			return m, nil
		}
		if m.mode == modeAddGoal {
			return m.addGoal(text), nil
		}
		m.pendingName = text
		m.mode = modeAddPin
		m.input.Blur()
		m.status = fmt.Sprintf("Pin \"%s\" as non-negotiable? y/n", text)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updatePinPrompt(key string) (tea.Model, tea.Cmd) {
	var pinned bool
	switch key {
	case "y", "Y":
		pinned = true
	case "n", "N", m.cfg.Keys.Confirm:
	case m.cfg.Keys.Cancel:
		return m.backToList("Cancelled"), nil
	default:
		return m, nil
	}
	name := m.pendingName
	if _, err := m.habits.Add(name, pinned); err != nil {
		m.log.Error("add habit", "name", name, "err", err)
		return m.backToList(fmt.Sprintf("save failed: %v", err)), nil
	}
	m = m.backToList("Added habit")
	m.cursor = clampCursor(len(m.habits.Habits())-1, len(m.habits.Habits()))
	return m, nil
}

func (m Model) addGoal(text string) Model {
	if _, err := m.goals.Add(text); err != nil {
		m.log.Error("add goal", "err", err)
		return m.backToList(fmt.Sprintf("save failed: %v", err))
	}
	n := len(m.goals.Goals())
	m = m.backToList("Added goal")
	m.goalCursor = clampCursor(n-1, n)
	return m
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	habits := m.habits.Habits()
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, len(habits))
	case m.cfg.Keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, len(habits))
	case m.cfg.Keys.Add:
		return m.startAdd(modeAddHabit, "New habit...", "Add habit: type a name and press Enter")
	case m.cfg.Keys.Toggle:
		if len(habits) == 0 {
			return m, nil
		}
		h := habits[clampCursor(m.cursor, len(habits))]
		if _, err := m.habits.ToggleDone(h.ID, m.today()); err != nil {
			m.log.Error("toggle habit", "id", h.ID, "err", err)
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.status = "Toggled " + h.Name
	case m.cfg.Keys.Pin:
		if len(habits) == 0 {
			return m, nil
		}
		h := habits[clampCursor(m.cursor, len(habits))]
		if _, err := m.habits.TogglePin(h.ID); err != nil {
			m.log.Error("pin habit", "id", h.ID, "err", err)
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		if h.NonRemovable {
			m.status = "Unpinned " + h.Name
		} else {
			m.status = "Pinned " + h.Name
		}
	case m.cfg.Keys.Delete:
		if len(habits) == 0 {
			return m, nil
		}
		h := habits[clampCursor(m.cursor, len(habits))]
		m.confirmDel = true
		m.pendingDel = &h
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", h.Name)
	case m.cfg.Keys.Timeline:
		m.timeline = m.timeline.Next()
		m.status = "Timeline: " + m.timeline.String()
	case m.cfg.Keys.Goals:
		return m.toggleGoalsPanel(), nil
	case m.cfg.Keys.SwitchPane:
		if m.goalsOpen {
			m.pane = paneGoals
			m.status = "Goals"
		}
	}
	return m, nil
}

func (m Model) toggleGoalsPanel() Model {
	m.goalsOpen = !m.goalsOpen
	if m.goalsOpen {
		m.pane = paneGoals
		m.status = "Goals open"
	} else {
		m.pane = paneHabits
		m.status = "Goals closed"
	}
	return m
}

func (m Model) updateGoalsPane(key string) (tea.Model, tea.Cmd) {
	goals := m.goals.Goals()
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.goalCursor = clampCursor(m.goalCursor+1, len(goals))
	case m.cfg.Keys.Up, "up":
		m.goalCursor = clampCursor(m.goalCursor-1, len(goals))
	case m.cfg.Keys.Add:
		return m.startAdd(modeAddGoal, "Add a new goal...", "Add goal: type it and press Enter")
	case m.cfg.Keys.Toggle, m.cfg.Keys.Confirm:
		if changed, err := m.goals.Toggle(m.goalCursor); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		} else if changed {
			m.status = "Toggled goal"
		}
	case m.cfg.Keys.Delete:
		if changed, err := m.goals.Remove(m.goalCursor); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		} else if changed {
			n := len(m.goals.Goals())
			m.goalCursor = clampCursor(m.goalCursor, n)
			m.status = "Removed goal"
		}
	case m.cfg.Keys.Goals:
		return m.toggleGoalsPanel(), nil
	case m.cfg.Keys.SwitchPane, m.cfg.Keys.Cancel:
		m.pane = paneHabits
		m.status = "Habits"
	case m.cfg.Keys.Timeline:
		m.timeline = m.timeline.Next()
		m.status = "Timeline: " + m.timeline.String()
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		_, err := m.habits.Remove(m.pendingDel.ID)
		switch {
		case errors.Is(err, habit.ErrPinned):
			m.status = fmt.Sprintf("\"%s\" is pinned; unpin it first", m.pendingDel.Name)
		case err != nil:
			m.log.Error("remove habit", "id", m.pendingDel.ID, "err", err)
			m.status = fmt.Sprintf("delete failed: %v", err)
		default:
			m.cursor = clampCursor(m.cursor, len(m.habits.Habits()))
			m.status = "Deleted habit"
		}
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
