// Package printers renders habits, goals and timelines for the CLI.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"habitbox/internal/goal"
	"habitbox/internal/habit"
	"habitbox/internal/timeline"
)

const (
	markDone    = "■"
	markOpen    = "·"
	starPinned  = "★"
	starLoose   = "☆"
	checkDone   = "[x]"
	checkNotYet = "[ ]"
)

var (
	bold  = color.New(color.Bold)
	title = color.New(color.Bold, color.Underline)
	faint = color.New(color.Faint, color.Italic)
	green = color.New(color.FgGreen)
	pin   = color.New(color.FgHiYellow)
)

type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) Title(s string) {
	_, _ = title.Fprintln(pp.out(), s)
}

func (pp *PrettyPrint) none() {
	_, _ = faint.Fprint(pp.out(), " none\n\n")
}

// Habits lists every habit with its pin flag and today's completion.
func (pp *PrettyPrint) Habits(list habit.List, today time.Time) {
	pp.Title("Habits")
	if len(list) == 0 {
		pp.none()
		return
	}
	day := timeline.Format(today)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), "", bold.Sprint("Habit"), bold.Sprint("Today"), bold.Sprint("Total"))
	for _, h := range list {
		star := starLoose
		if h.NonRemovable {
			star = pin.Sprint(starPinned)
		}
		check := checkNotYet
		if h.DoneOn(day) {
			check = green.Sprint(checkDone)
		}
		tbl.AddRow(h.ID, star, h.Name, check, len(h.DoneDates))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Timeline draws one row per habit with a cell for every column of mode.
func (pp *PrettyPrint) Timeline(list habit.List, mode timeline.Mode, ref time.Time) {
	pp.Title(fmt.Sprintf("Timeline (%s, %s)", mode, timeline.Format(ref)))
	if len(list) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = " "
	header := []interface{}{""}
	for _, l := range timeline.Labels(mode, ref) {
		header = append(header, bold.Sprint(l))
	}
	tbl.AddRow(header...)
	for _, h := range list {
		row := []interface{}{h.Name}
		for _, done := range timeline.Row(h, mode, ref) {
			if done {
				row = append(row, green.Sprint(markDone))
			} else {
				row = append(row, markOpen)
			}
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Goals prints the checklist with the indexes goal commands take.
func (pp *PrettyPrint) Goals(heading string, list goal.List) {
	pp.Title(heading)
	if len(list) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for i, g := range list {
		check := checkNotYet
		text := g.Text
		if g.Done {
			check = green.Sprint(checkDone)
			text = faint.Sprint(text)
		}
		tbl.AddRow(strconv.Itoa(i), check, text)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = faint.Fprintf(pp.out(), "%d of %d remaining\n", list.Remaining(), len(list))
}

// JSON writes v indented, for --json output.
func (pp *PrettyPrint) JSON(v interface{}) error {
	enc := json.NewEncoder(pp.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
