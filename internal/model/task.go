package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the text form of a due date.
const DateLayout = "2006-01-02"

// Task is the domain model for a todo entry.
type Task struct {
	ID        string
	Title     string
	Due       *time.Time
	Priority  Priority
	Completed bool
}

// DueString returns the due date as YYYY-MM-DD, or "No Date".
func (t Task) DueString() string {
	if t.Due == nil {
		return "No Date"
	}
	return t.Due.Format(DateLayout)
}

// ParseDue parses an optional YYYY-MM-DD date. Empty input means no date.
func ParseDue(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("due date %q: want YYYY-MM-DD", s)
	}
	return &d, nil
}
