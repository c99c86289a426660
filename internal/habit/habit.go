// Package habit owns the tracked habits: the record, the list
// transformations applied on every user action, and the store that persists
// the list after each change.
package habit

import (
	"slices"
	"strings"
)

type Habit struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	DoneDates    []string `json:"doneDates"`
	NonRemovable bool     `json:"nonRemovable"`
}

// DoneOn reports whether day (YYYY-MM-DD) is among the completions.
func (h Habit) DoneOn(day string) bool {
	return slices.Contains(h.DoneDates, day)
}

func (h Habit) clone() Habit {
	h.DoneDates = slices.Clone(h.DoneDates)
	if h.DoneDates == nil {
		h.DoneDates = []string{}
	}
	return h
}

// List is an ordered set of habits. Every method returns a fresh list and
// leaves the receiver's records untouched; the bool reports a change.
type List []Habit

// Defaults is the starter list used when nothing usable is stored.
func Defaults() List {
	return List{
		{ID: 1, Name: "Morning Run", DoneDates: []string{}},
		{ID: 2, Name: "Drink Water", DoneDates: []string{}},
		{ID: 3, Name: "Read Book", DoneDates: []string{}},
	}
}

func (l List) Clone() List {
	out := make(List, len(l))
	for i, h := range l {
		out[i] = h.clone()
	}
	return out
}

func (l List) Find(id int64) (Habit, bool) {
	for _, h := range l {
		if h.ID == id {
			return h.clone(), true
		}
	}
	return Habit{}, false
}

// MaxID is the largest id in the list, or 0 for an empty list.
func (l List) MaxID() int64 {
	var max int64
	for _, h := range l {
		if h.ID > max {
			max = h.ID
		}
	}
	return max
}

func (l List) Add(id int64, name string, pinned bool) (List, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return l, false
	}
	out := make(List, 0, len(l)+1)
	out = append(out, l...)
	out = append(out, Habit{ID: id, Name: name, DoneDates: []string{}, NonRemovable: pinned})
	return out, true
}

// ToggleDone adds day to the habit's completions, or removes it if present.
func (l List) ToggleDone(id int64, day string) (List, bool) {
	return l.update(id, func(h Habit) Habit {
		if h.DoneOn(day) {
			h.DoneDates = slices.DeleteFunc(h.DoneDates, func(d string) bool { return d == day })
		} else {
			h.DoneDates = append(h.DoneDates, day)
		}
		return h
	})
}

func (l List) TogglePin(id int64) (List, bool) {
	return l.update(id, func(h Habit) Habit {
		h.NonRemovable = !h.NonRemovable
		return h
	})
}

func (l List) Remove(id int64) (List, bool) {
	idx := slices.IndexFunc(l, func(h Habit) bool { return h.ID == id })
	if idx < 0 {
		return l, false
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:idx]...)
	out = append(out, l[idx+1:]...)
	return out, true
}

func (l List) update(id int64, fn func(Habit) Habit) (List, bool) {
	idx := slices.IndexFunc(l, func(h Habit) bool { return h.ID == id })
	if idx < 0 {
		return l, false
	}
	out := slices.Clone(l)
	out[idx] = fn(l[idx].clone())
	return out, true
}
