package model

import (
	"fmt"
	"strings"
)

// Filter selects tasks by completion state.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterCompleted   Filter = "completed"
	FilterUncompleted Filter = "uncompleted"
)

func (f Filter) String() string { return string(f) }

// Next cycles all -> uncompleted -> completed -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterUncompleted
	case FilterUncompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// ParseFilter accepts the filter names in any case; empty means all.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "uncompleted", "pending":
		return FilterUncompleted, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, completed or uncompleted)", s)
}
