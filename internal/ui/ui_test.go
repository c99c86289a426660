package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habitbox/internal/config"
	"habitbox/internal/goal"
	"habitbox/internal/habit"
	"habitbox/internal/kv"
	"habitbox/internal/timeline"
)

var fixedNow = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local)

func newTestModel(t *testing.T, opts ...habit.Option) Model {
	t.Helper()
	hs, err := habit.Load(kv.NewMemory(), opts...)
	if err != nil {
		t.Fatalf("load habits: %v", err)
	}
	cfg := config.Default(t.TempDir())
	return New(hs, goal.New(), cfg, WithClock(func() time.Time { return fixedNow }))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEscape}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m
}

func TestToggleMarksToday(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("j"), space)

	h, _ := m.habits.Habits().Find(2)
	if !h.DoneOn("2024-06-10") {
		t.Fatalf("expected Drink Water done today, got %v", h.DoneDates)
	}
	if !strings.Contains(m.status, "Drink Water") {
		t.Fatalf("unexpected status %q", m.status)
	}

	m = send(t, m, space)
	h, _ = m.habits.Habits().Find(2)
	if len(h.DoneDates) != 0 {
		t.Fatalf("expected toggle back, got %v", h.DoneDates)
	}
}

func TestAddHabitWithPin(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("a"))
	if m.mode != modeAddHabit {
		t.Fatalf("expected add mode, got %v", m.mode)
	}
	m = send(t, m, runes("Stretch"), enter)
	if m.mode != modeAddPin {
		t.Fatalf("expected pin prompt, got %v", m.mode)
	}
	m = send(t, m, runes("y"))

	list := m.habits.Habits()
	if len(list) != 4 {
		t.Fatalf("expected 4 habits, got %d", len(list))
	}
	last := list[3]
	if last.Name != "Stretch" || !last.NonRemovable {
		t.Fatalf("unexpected habit %+v", last)
	}
	if m.cursor != 3 || m.mode != modeList {
		t.Fatalf("expected cursor on new habit in list mode, got cursor=%d mode=%v", m.cursor, m.mode)
	}
}

func TestAddHabitBlankName(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("a"), runes("   "), enter)
	if m.mode != modeAddHabit {
		t.Fatalf("blank name should keep add mode, got %v", m.mode)
	}
	if m.status != "Name cannot be empty" {
		t.Fatalf("unexpected status %q", m.status)
	}
	m = send(t, m, esc)
	if m.mode != modeList || len(m.habits.Habits()) != 3 {
		t.Fatalf("cancel should leave list unchanged")
	}
}

func TestDeleteConfirm(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("d"))
	if !m.confirmDel {
		t.Fatalf("expected confirmation prompt")
	}
	m = send(t, m, runes("n"))
	if len(m.habits.Habits()) != 3 {
		t.Fatalf("declined delete removed a habit")
	}
	m = send(t, m, runes("j"), runes("d"), runes("y"))
	list := m.habits.Habits()
	if len(list) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(list))
	}
	if _, ok := list.Find(2); ok {
		t.Fatalf("expected Drink Water removed")
	}
}

func TestDeletePinnedWithGuard(t *testing.T) {
	m := newTestModel(t, habit.WithPinGuard(true))
	m = send(t, m, runes("p"), runes("d"), runes("y"))
	if len(m.habits.Habits()) != 3 {
		t.Fatalf("pinned habit should survive")
	}
	if !strings.Contains(m.status, "pinned") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestTimelineCycle(t *testing.T) {
	m := newTestModel(t)
	if m.timeline != timeline.Week {
		t.Fatalf("expected week default, got %s", m.timeline)
	}
	m = send(t, m, runes("t"))
	if m.timeline != timeline.Month {
		t.Fatalf("expected month, got %s", m.timeline)
	}
	view := m.View()
	if !strings.Contains(view, "30") || strings.Contains(view, "31") {
		t.Fatalf("june view should show 30 day columns:\n%s", view)
	}
	m = send(t, m, runes("t"), runes("t"))
	if m.timeline != timeline.Week {
		t.Fatalf("expected cycle back to week, got %s", m.timeline)
	}
}

func TestGoalsPanel(t *testing.T) {
	m := newTestModel(t)
	if strings.Contains(m.View(), "Build a standout portfolio") {
		t.Fatalf("goals should start collapsed")
	}

	m = send(t, m, runes("g"))
	if !m.goalsOpen || m.pane != paneGoals {
		t.Fatalf("expected goals panel focused")
	}
	if !strings.Contains(m.View(), "Build a standout portfolio") {
		t.Fatalf("open panel should list goals")
	}

	m = send(t, m, space)
	goals := m.goals.Goals()
	if !goals[0].Done || goals[1].Done || goals[2].Done {
		t.Fatalf("expected only goal 0 done: %+v", goals)
	}

	m = send(t, m, runes("a"), runes("Learn Go"), enter)
	goals = m.goals.Goals()
	if len(goals) != 4 || goals[3].Text != "Learn Go" || m.goalCursor != 3 {
		t.Fatalf("unexpected goals after add: %+v cursor=%d", goals, m.goalCursor)
	}

	m = send(t, m, runes("d"))
	if len(m.goals.Goals()) != 3 || m.goalCursor != 2 {
		t.Fatalf("expected goal removed, cursor clamped: %+v cursor=%d", m.goals.Goals(), m.goalCursor)
	}

	m = send(t, m, tab)
	if m.pane != paneHabits || !m.goalsOpen {
		t.Fatalf("tab should return focus to habits")
	}
	m = send(t, m, runes("g"))
	if m.goalsOpen {
		t.Fatalf("expected goals panel closed")
	}
}

func TestViewShowsWeekChart(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, space)
	view := m.View()
	for _, want := range []string{"Habits", "Morning Run", "Tue", "Mon", "■", "Achieve Before 2027"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
