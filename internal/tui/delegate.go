package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/prioritodo/internal/model"
)

// taskItem adapts model.Task to bubbles/list.Item
type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	t := it.task

	box := mutedStyle.Render(boxUnchecked)
	title := t.Title
	if t.Completed {
		box = successStyle.Render(boxChecked)
		title = doneStyle.Render(title)
	}

	line := fmt.Sprintf("%s %s %s  %s", box, priorityBadge(t.Priority), title, mutedStyle.Render(t.DueString()))
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}
