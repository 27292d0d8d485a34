package model

import (
	"fmt"
	"strings"
)

// Filter narrows a collection by completion status.
type Filter int

const (
	FilterAll Filter = iota
	FilterOpen
	FilterCompleted
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterOpen, FilterCompleted}

func (f Filter) String() string {
	switch f {
	case FilterOpen:
		return "open"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Label is the text shown on the filter control.
func (f Filter) Label() string {
	switch f {
	case FilterOpen:
		return "Open"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Match reports whether it passes the filter.
func (f Filter) Match(it Item) bool {
	switch f {
	case FilterOpen:
		return !it.Completed
	case FilterCompleted:
		return it.Completed
	default:
		return true
	}
}

// Apply returns the items passing f, preserving their relative order.
// The input slice is never modified.
func (f Filter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Next cycles All -> Open -> Completed -> All.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// ParseFilter accepts "all", "open" or "completed" (case-insensitive).
// An empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "open":
		return FilterOpen, nil
	case "completed":
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all|open|completed)", s)
}
