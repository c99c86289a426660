package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"habitbox/internal/config"
	"habitbox/internal/habit"
	"habitbox/internal/timeline"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pinStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	activeStyle  = lipgloss.NewStyle().Bold(true).Reverse(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Habits"))
	b.WriteString("\n\n")
	habits := m.habits.Habits()
	if len(habits) == 0 {
		b.WriteString(fmt.Sprintf("No habits yet. Press '%s' to add one.\n", m.cfg.Keys.Add))
	} else {
		b.WriteString(m.renderHabitList(habits))
	}

	switch m.mode {
	case modeAddHabit, modeAddGoal:
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeAddPin:
		b.WriteString("\n")
		b.WriteString("Non-negotiable? (y/n)\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderTimeline(habits))
	b.WriteString("\n")
	b.WriteString(m.renderGoals())

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderHabitList(habits habit.List) string {
	day := timeline.Format(m.today())
	var b strings.Builder
	for i, h := range habits {
		cursor := " "
		if m.cursor == i && m.pane == paneHabits && m.mode == modeList {
			cursor = ">"
		}
		checkbox := "[ ]"
		if h.DoneOn(day) {
			checkbox = doneStyle.Render("[x]")
		}
		star := "☆"
		if h.NonRemovable {
			star = pinStyle.Render("★")
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, checkbox, star, h.Name))
	}
	return b.String()
}

func (m Model) renderTimeline(habits habit.List) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Timeline"))
	b.WriteString(" ")
	for _, md := range timeline.Modes {
		label := " " + strings.ToUpper(md.String()[:1]) + md.String()[1:] + " "
		if md == m.timeline {
			label = activeStyle.Render(label)
		}
		b.WriteString(label)
	}
	b.WriteString("\n\n")

	today := m.today()
	labels := timeline.Labels(m.timeline, today)
	const width = 4
	nameWidth := 0
	for _, h := range habits {
		if w := lipgloss.Width(h.Name); w > nameWidth {
			nameWidth = w
		}
	}

	b.WriteString(strings.Repeat(" ", nameWidth+1))
	for _, l := range labels {
		b.WriteString(fmt.Sprintf("%-*s", width, l))
	}
	b.WriteString("\n")
	for _, h := range habits {
		b.WriteString(h.Name)
		b.WriteString(strings.Repeat(" ", nameWidth-lipgloss.Width(h.Name)+1))
		for _, done := range timeline.Row(h, m.timeline, today) {
			cell := fmt.Sprintf("%-*s", width, "·")
			if done {
				cell = doneStyle.Render(fmt.Sprintf("%-*s", width, "■"))
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderGoals() string {
	var b strings.Builder
	arrow := "▼"
	if m.goalsOpen {
		arrow = "▲"
	}
	b.WriteString(headingStyle.Render(m.cfg.GoalsTitle))
	b.WriteString(" " + arrow + "\n")
	if !m.goalsOpen {
		return b.String()
	}
	goals := m.goals.Goals()
	if len(goals) == 0 {
		b.WriteString(dimStyle.Render("  no goals"))
		b.WriteString("\n")
	}
	for i, g := range goals {
		cursor := " "
		if m.goalCursor == i && m.pane == paneGoals && m.mode == modeList {
			cursor = ">"
		}
		text := g.Text
		checkbox := "[ ]"
		if g.Done {
			checkbox = doneStyle.Render("[x]")
			text = dimStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, checkbox, text))
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • space done • %s pin • %s delete • %s timeline • %s goals • %s switch • %s quit",
		k.Up, k.Down, k.Add, k.Pin, k.Delete, k.Timeline, k.Goals, k.SwitchPane, k.Quit)
}
