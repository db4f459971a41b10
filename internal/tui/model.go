package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/prioritodo/internal/model"
	"github.com/idilsaglam/prioritodo/internal/store/taskstore"
	"github.com/idilsaglam/prioritodo/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeSearch
	modeConfirmClear
)

// Model is the interactive host. The store is the only source of truth; the
// list widget is rebuilt from it after every change.
type Model struct {
	store  *taskstore.Store
	list   list.Model
	form   addForm
	search textinput.Model

	mode   mode
	filter model.Filter
	query  string
	status string

	width, height int
}

var (
	addBind      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	completeBind = key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done"))
	removeBind   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	clearBind    = key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete all"))
	filterBind   = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	searchBind   = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	quitBind     = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))

	// ctrl+c quits from any mode; q stays typeable in the inputs.
	forceQuitBind = key.NewBinding(key.WithKeys("ctrl+c"))
)

func New(st *taskstore.Store, filter model.Filter) Model {
	if filter == "" {
		filter = model.FilterAll
	}

	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false) // search and filter go through view.VisibleTasks
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("task", "tasks")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{addBind, completeBind, removeBind, filterBind, searchBind}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{addBind, completeBind, removeBind, clearBind, filterBind, searchBind}
	}

	s := textinput.New()
	s.Prompt = "/ "
	s.Placeholder = "search titles..."
	s.CharLimit = 200

	m := Model{
		store:  st,
		list:   l,
		form:   newAddForm(),
		search: s,
		filter: filter,
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

// Run starts the Bubble Tea program on st.
func Run(st *taskstore.Store, filter model.Filter) error {
	p := tea.NewProgram(New(st, filter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh rebuilds the list items from the store through the view projection.
func (m *Model) refresh() {
	visible := view.VisibleTasks(m.store.List(), m.filter, m.query)
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, taskItem{task: t})
	}
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

func (m *Model) selectTask(id string) {
	for i, it := range m.list.Items() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) selected() (model.Task, bool) {
	ti, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return ti.task, true
}

func (m *Model) resize() {
	extra := 0
	switch m.mode {
	case modeAdd:
		extra = 6
	case modeSearch, modeConfirmClear:
		extra = 3
	}
	h := m.height - 10 - extra
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		if msg.Width > 30 {
			m.form.inputs[fieldTitle].Width = msg.Width - 20
			m.search.Width = msg.Width - 10
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, forceQuitBind) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirmClear:
			return m.updateConfirmClear(msg)
		}
		return m.updateList(msg)
	}
	// cursor blinks and other ticks go to whatever has focus
	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		cmd = m.form.update(msg)
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, quitBind):
		return m, tea.Quit

	case key.Matches(msg, addBind):
		m.mode = modeAdd
		m.status = ""
		cmd := m.form.reset()
		m.resize()
		return m, cmd

	case key.Matches(msg, completeBind):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if t.Completed {
			m.status = fmt.Sprintf("%q is already done", t.Title)
			return m, nil
		}
		m.store.Complete(t.ID)
		m.status = fmt.Sprintf("Completed %q", t.Title)
		m.refresh()
		return m, nil

	case key.Matches(msg, removeBind):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.store.Remove(t.ID)
		m.status = fmt.Sprintf("Deleted %q", t.Title)
		m.refresh()
		return m, nil

	case key.Matches(msg, clearBind):
		if m.store.Len() == 0 {
			m.status = "Nothing to delete"
			return m, nil
		}
		m.mode = modeConfirmClear
		m.status = fmt.Sprintf("Delete all %d tasks? y/n", m.store.Len())
		m.resize()
		return m, nil

	case key.Matches(msg, filterBind):
		m.filter = m.filter.Next()
		m.status = "Showing " + m.filter.String()
		m.refresh()
		return m, nil

	case key.Matches(msg, searchBind):
		m.mode = modeSearch
		m.status = ""
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		m.resize()
		return m, m.search.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.form.reset()
		m.form.inputs[fieldTitle].Blur()
		m.status = "Add cancelled"
		m.resize()
		return m, nil
	case "tab", "down":
		return m, m.form.move(1)
	case "shift+tab", "up":
		return m, m.form.move(-1)
	case "enter":
		title, due, p, err := m.form.values()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		id, err := m.store.Add(title, due, p)
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		t, _ := m.store.Get(id)
		m.form.reset()
		m.form.inputs[fieldTitle].Blur()
		m.mode = modeList
		m.status = fmt.Sprintf("Added %q", t.Title)
		m.refresh()
		m.selectTask(id)
		m.resize()
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeList
		m.search.Blur()
		m.resize()
		return m, nil
	case "esc":
		m.mode = modeList
		m.query = ""
		m.search.SetValue("")
		m.search.Blur()
		m.refresh()
		m.resize()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.query {
		m.query = q
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		n := m.store.Len()
		m.store.ClearAll()
		m.mode = modeList
		m.status = fmt.Sprintf("Deleted %d tasks", n)
		m.refresh()
		m.resize()
	case "n", "N", "esc":
		m.mode = modeList
		m.status = "Delete cancelled"
		m.resize()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	if m.store.Len() == 0 {
		b.WriteString(mutedStyle.Render("No tasks yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("\n")
		b.WriteString(panelString(m.form.view()))
	case modeSearch:
		b.WriteString("\n")
		b.WriteString(panelString(m.search.View()))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.mode == modeConfirmClear {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(mutedStyle.Render(m.status))
		}
	}
	return panelString(b.String())
}

func (m Model) header() string {
	p := view.ComputeProgress(m.store.List())
	lines := []string{
		fmt.Sprintf("%s   %s %d  %s %d  %s %d",
			titleStyle.Render("Todos"),
			successStyle.Render("✔"), p.CompletedCount,
			pendingStyle.Render("•"), p.Pending(),
			accentStyle.Render("Total"), p.TotalCount,
		),
		progressBar(p, 28),
	}
	if p.AllComplete {
		lines = append(lines, celebrateStyle.Render("🏆 All tasks complete!"))
	}
	filter := "filter: " + m.filter.String()
	if m.query != "" {
		filter += fmt.Sprintf("  search: %q", m.query)
	}
	lines = append(lines, helpStyle.Render(filter))
	return strings.Join(lines, "\n")
}
