package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"habitbox/internal/goal"
	"habitbox/internal/habit"
	"habitbox/internal/timeline"
)

func init() {
	color.NoColor = true
}

func TestHabits(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	today := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	list, _ := habit.Defaults().ToggleDone(2, "2024-06-10")
	list, _ = list.TogglePin(3)

	pp.Habits(list, today)
	out := buf.String()
	for _, want := range []string{"Habits", "Morning Run", "Drink Water", starPinned, checkDone} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected title, header and 3 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[3], checkDone) || strings.Contains(lines[2], checkDone) {
		t.Fatalf("completion shown on wrong row:\n%s", out)
	}
}

func TestHabitsEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Habits(nil, time.Now())
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestTimelineWeek(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	ref := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	list := habit.List{{ID: 1, Name: "Run", DoneDates: []string{"2024-06-10", "2024-06-08"}}}

	pp.Timeline(list, timeline.Week, ref)
	out := buf.String()
	if !strings.Contains(out, "Tue Wed Thu Fri Sat Sun Mon") {
		t.Fatalf("missing week header:\n%s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	row := lines[len(lines)-1]
	if got := strings.Count(row, markDone); got != 2 {
		t.Fatalf("expected 2 done cells, got %d in %q", got, row)
	}
}

func TestGoals(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	list, _ := goal.Defaults().Toggle(0)
	pp.Goals("Achieve Before 2027", list)
	out := buf.String()
	if !strings.Contains(out, "Achieve Before 2027") || !strings.Contains(out, "2 of 3 remaining") {
		t.Fatalf("unexpected goals output:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	if err := pp.JSON(habit.Defaults()[:1]); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"nonRemovable": false`) {
		t.Fatalf("unexpected json: %s", buf.String())
	}
}
