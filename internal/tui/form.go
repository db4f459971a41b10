package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/prioritodo/internal/model"
)

const (
	fieldTitle = iota
	fieldDue
	fieldPriority
	fieldCount
)

// addForm is the inline "new task" editor. An array keeps copies of the
// bubbletea model independent.
type addForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newAddForm() addForm {
	var f addForm

	f.inputs[fieldTitle] = textinput.New()
	f.inputs[fieldTitle].Prompt = "title    > "
	f.inputs[fieldTitle].Placeholder = "New task title..."
	f.inputs[fieldTitle].CharLimit = 200

	f.inputs[fieldDue] = textinput.New()
	f.inputs[fieldDue].Prompt = "due      > "
	f.inputs[fieldDue].Placeholder = "YYYY-MM-DD (optional)"
	f.inputs[fieldDue].CharLimit = len(model.DateLayout)

	f.inputs[fieldPriority] = textinput.New()
	f.inputs[fieldPriority].Prompt = "priority > "
	f.inputs[fieldPriority].Placeholder = "high / medium / low (default medium)"
	f.inputs[fieldPriority].CharLimit = 6

	return f
}

// reset clears every field and focuses the title.
func (f *addForm) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.err = ""
	f.focus = fieldTitle
	return f.inputs[fieldTitle].Focus()
}

func (f *addForm) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// values parses the due date and priority. The title is validated by the store.
func (f addForm) values() (string, *time.Time, model.Priority, error) {
	due, err := model.ParseDue(f.inputs[fieldDue].Value())
	if err != nil {
		return "", nil, "", err
	}
	p := model.PriorityMedium
	if raw := strings.TrimSpace(f.inputs[fieldPriority].Value()); raw != "" {
		if p, err = model.ParsePriority(raw); err != nil {
			return "", nil, "", err
		}
	}
	return f.inputs[fieldTitle].Value(), due, p, nil
}

func (f addForm) view() string {
	title := "Add new task"
	if f.err != "" {
		title += " - " + errorStyle.Render(f.err)
	}
	lines := []string{title}
	for i := range f.inputs {
		lines = append(lines, f.inputs[i].View())
	}
	lines = append(lines, helpStyle.Render("tab next field • enter save • esc cancel"))
	return strings.Join(lines, "\n")
}
