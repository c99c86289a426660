// Package timeline maps a chart mode and a reference day onto the labelled
// columns of the completion chart, and each column back onto a calendar day.
package timeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownMode  = errors.New("timeline: unknown mode")
	ErrUnknownLabel = errors.New("timeline: unknown label")
)

type Mode string

const (
	Week  Mode = "week"
	Month Mode = "month"
	Year  Mode = "year"
)

// Modes lists every mode in switching order.
var Modes = []Mode{Week, Month, Year}

const weekDays = 7

var (
	dayNames   = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Week:
		return Week, nil
	case Month:
		return Month, nil
	case Year:
		return Year, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Next cycles week, month, year and back to week.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Week
}

func (m Mode) String() string {
	return string(m)
}

// Column is one cell position of the chart.
type Column struct {
	Label string
	Date  time.Time
}

// Len is the number of columns mode produces for ref.
func Len(mode Mode, ref time.Time) int {
	switch mode {
	case Week:
		return weekDays
	case Month:
		return DaysInMonth(ref.Year(), ref.Month())
	case Year:
		return len(monthNames)
	}
	return 0
}

// Labels returns the column labels for mode, oldest first. Week mode ends on
// ref itself, so index 6 is always the reference day.
func Labels(mode Mode, ref time.Time) []string {
	n := Len(mode, ref)
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		d, _ := DateAt(mode, i, ref)
		labels = append(labels, label(mode, i, d))
	}
	return labels
}

func label(mode Mode, i int, d time.Time) string {
	switch mode {
	case Week:
		return dayNames[d.Weekday()]
	case Month:
		return strconv.Itoa(i + 1)
	default:
		return monthNames[i]
	}
}

// DateAt returns the calendar day behind column i.
func DateAt(mode Mode, i int, ref time.Time) (time.Time, bool) {
	if i < 0 || i >= Len(mode, ref) {
		return time.Time{}, false
	}
	ref = Day(ref)
	switch mode {
	case Week:
		return ref.AddDate(0, 0, -(weekDays - 1 - i)), true
	case Month:
		return time.Date(ref.Year(), ref.Month(), i+1, 0, 0, 0, 0, ref.Location()), true
	default:
		return time.Date(ref.Year(), time.Month(i+1), 1, 0, 0, 0, 0, ref.Location()), true
	}
}

// DateFor maps a label produced by Labels(mode, ref) back to its day.
func DateFor(mode Mode, lbl string, ref time.Time) (time.Time, error) {
	for i, l := range Labels(mode, ref) {
		if l == lbl {
			d, _ := DateAt(mode, i, ref)
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q in %s mode", ErrUnknownLabel, lbl, mode)
}

func Columns(mode Mode, ref time.Time) []Column {
	n := Len(mode, ref)
	cols := make([]Column, 0, n)
	for i := 0; i < n; i++ {
		d, _ := DateAt(mode, i, ref)
		cols = append(cols, Column{Label: label(mode, i, d), Date: d})
	}
	return cols
}

// Completion answers whether something was done on an ISO day.
type Completion interface {
	DoneOn(day string) bool
}

// Row reports, per column, whether done was completed on that column's day.
func Row(done Completion, mode Mode, ref time.Time) []bool {
	cols := Columns(mode, ref)
	row := make([]bool, len(cols))
	for i, c := range cols {
		row[i] = done.DoneOn(Format(c.Date))
	}
	return row
}
