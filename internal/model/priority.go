package model

import (
	"fmt"
	"strings"
)

// Priority is the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityWeight = map[Priority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Weight returns the sort weight for p, higher sorts first. Unknown values weigh 0.
func (p Priority) Weight() int { return priorityWeight[p] }

// Valid reports whether p is one of the known levels.
func (p Priority) Valid() bool {
	_, ok := priorityWeight[p]
	return ok
}

func (p Priority) String() string { return string(p) }

// ParsePriority accepts high/medium/low or h/m/l, in any case.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return PriorityHigh, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("unknown priority %q (want high, medium or low)", s)
}
