// Package view derives what a host should display from the task list.
// Nothing here mutates its input.
package view

import (
	"math"
	"strings"

	"github.com/idilsaglam/prioritodo/internal/model"
)

// Progress summarises completion across a task list.
type Progress struct {
	CompletedCount int
	TotalCount     int
	Percent        int  // 0..100, rounded to nearest
	AllComplete    bool // at least one task and every task done
}

// VisibleTasks returns the tasks passing both the filter and the
// case-insensitive title search, in input order. Unknown filters act as all.
func VisibleTasks(tasks []model.Task, f model.Filter, query string) []model.Task {
	q := strings.ToLower(query)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchFilter(t, f) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Title), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchFilter(t model.Task, f model.Filter) bool {
	switch f {
	case model.FilterCompleted:
		return t.Completed
	case model.FilterUncompleted:
		return !t.Completed
	default:
		return true
	}
}

func ComputeProgress(tasks []model.Task) Progress {
	p := Progress{TotalCount: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.CompletedCount++
		}
	}
	if p.TotalCount > 0 {
		p.Percent = int(math.Round(float64(p.CompletedCount) / float64(p.TotalCount) * 100))
	}
	p.AllComplete = p.TotalCount > 0 && p.CompletedCount == p.TotalCount
	return p
}

// Pending is the number of tasks still open.
func (p Progress) Pending() int { return p.TotalCount - p.CompletedCount }
