package cli

import (
	"fmt"

	"github.com/idilsaglam/prioritodo/internal/model"
	"github.com/idilsaglam/prioritodo/internal/ui"
	"github.com/idilsaglam/prioritodo/internal/view"
)

// -------------- rendering helpers --------------

// entry pairs a task with its 1-based position in the full list, so indexes
// printed under a filter still address the right task.
type entry struct {
	pos  int
	task model.Task
}

func renderList(all []model.Task, f model.Filter, query string, group bool) {
	p := view.ComputeProgress(all)
	th := ui.Current()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(th.Title, "Todos"),
		ui.C(th.Success, th.SymDone), p.CompletedCount,
		ui.C(th.Pending, th.SymUnchecked), p.Pending(),
		ui.C(th.Accent, "Total"), p.TotalCount,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(th.Muted, ui.ProgressBar(p, 28)))
	if p.AllComplete {
		lines = append(lines, ui.C(th.Success, th.SymTrophy+" all tasks complete"))
	}
	if f != model.FilterAll || query != "" {
		lines = append(lines, ui.C(th.Muted, fmt.Sprintf("filter: %s  search: %q", f, query)))
	}
	lines = append(lines, "")

	pos := make(map[string]int, len(all))
	for i, t := range all {
		pos[t.ID] = i + 1
	}
	visible := view.VisibleTasks(all, f, query)
	entries := make([]entry, 0, len(visible))
	for _, t := range visible {
		entries = append(entries, entry{pos: pos[t.ID], task: t})
	}

	switch {
	case len(all) == 0:
		lines = append(lines, ui.C(th.Muted, "no tasks yet"))
	case len(entries) == 0:
		lines = append(lines, ui.C(th.Muted, "no matching tasks"))
	case group:
		lines = append(lines, groupLines(entries)...)
	default:
		lines = append(lines, flatLines(entries)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(th.Muted, "Tip: add with `add -p high \"Submit report\"`"))
	ui.Panel(lines)
}

func flatLines(entries []entry) []string {
	if len(entries) == 0 {
		return []string{ui.C(ui.Current().Muted, "(none)")}
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		it := e.task
		idx := fmt.Sprintf("%2d.", e.pos)
		box := ui.Current().BoxUnchecked
		color := ui.Current().Muted
		if it.Completed {
			box, color = ui.Current().BoxChecked, ui.Current().Success
		}
		title := it.Title
		if r := []rune(title); len(r) > 60 {
			title = string(r[:57]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s %s  %s",
			ui.Dim(idx), ui.C(color, box), ui.PriorityBadge(it.Priority), title,
			ui.C(ui.Current().Muted, it.DueString())))
	}
	return out
}

func groupLines(entries []entry) []string {
	var pend, done []entry
	for _, e := range entries {
		if e.task.Completed {
			done = append(done, e)
		} else {
			pend = append(pend, e)
		}
	}
	var lines []string
	lines = append(lines, ui.C(ui.Current().Accent, "Pending"))
	lines = append(lines, flatLines(pend)...)
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Accent, "Done"))
	lines = append(lines, flatLines(done)...)
	return lines
}
