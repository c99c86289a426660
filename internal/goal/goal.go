// Package goal keeps the long-term goals checklist. Goals have no id; they
// are addressed by their position in the list.
package goal

import (
	"slices"
	"strings"
)

type Goal struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type List []Goal

func Defaults() List {
	return List{
		{Text: "Build a standout portfolio"},
		{Text: "Ship 3 real-world projects"},
		{Text: "Stay consistent with fitness"},
	}
}

func (l List) Add(text string) (List, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return l, false
	}
	out := make(List, 0, len(l)+1)
	out = append(out, l...)
	return append(out, Goal{Text: text}), true
}

func (l List) Toggle(i int) (List, bool) {
	if i < 0 || i >= len(l) {
		return l, false
	}
	out := slices.Clone(l)
	out[i].Done = !out[i].Done
	return out, true
}

func (l List) Remove(i int) (List, bool) {
	if i < 0 || i >= len(l) {
		return l, false
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...), true
}

// Remaining counts goals not yet done.
func (l List) Remaining() int {
	n := 0
	for _, g := range l {
		if !g.Done {
			n++
		}
	}
	return n
}
