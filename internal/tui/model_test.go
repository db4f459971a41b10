package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/prioritodo/internal/model"
	"github.com/idilsaglam/prioritodo/internal/store/taskstore"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T, expected Model", next)
		}
	}
	return m
}

// seeded returns a store holding the three-task scenario, sorted
// Submit report (high), Call mom (medium), Buy milk (low).
func seeded(t *testing.T) *taskstore.Store {
	t.Helper()
	st := taskstore.New()
	for _, a := range []struct {
		title string
		p     model.Priority
	}{
		{"Buy milk", model.PriorityLow},
		{"Submit report", model.PriorityHigh},
		{"Call mom", model.PriorityMedium},
	} {
		if _, err := st.Add(a.title, nil, a.p); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	return st
}

func visibleTitles(m Model) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.(taskItem).task.Title)
	}
	return out
}

func TestNew_ListsStoreInPriorityOrder(t *testing.T) {
	m := New(seeded(t), "")
	got := strings.Join(visibleTitles(m), ",")
	if got != "Submit report,Call mom,Buy milk" {
		t.Errorf("items = %s", got)
	}
	if m.filter != model.FilterAll {
		t.Errorf("filter = %q, expected all", m.filter)
	}
}

func TestAddForm(t *testing.T) {
	st := taskstore.New()
	m := New(st, model.FilterAll)

	m = send(t, m, "a")
	if m.mode != modeAdd {
		t.Fatalf("mode = %v, expected add", m.mode)
	}
	m = send(t, m, "Submit report", "tab", "2024-01-01", "tab", "high", "enter")

	if m.mode != modeList {
		t.Fatalf("mode = %v after submit (form error %q)", m.mode, m.form.err)
	}
	tasks := st.List()
	if len(tasks) != 1 {
		t.Fatalf("store has %d tasks, expected 1", len(tasks))
	}
	task := tasks[0]
	if task.Title != "Submit report" || task.Priority != model.PriorityHigh || task.DueString() != "2024-01-01" {
		t.Errorf("stored task = %+v", task)
	}
	if !strings.Contains(m.status, "Added") {
		t.Errorf("status = %q", m.status)
	}
}

func TestAddForm_DefaultsToMedium(t *testing.T) {
	st := taskstore.New()
	m := send(t, New(st, model.FilterAll), "a", "Call mom", "enter")
	tasks := st.List()
	if len(tasks) != 1 || tasks[0].Priority != model.PriorityMedium || tasks[0].Due != nil {
		t.Errorf("stored tasks = %+v", tasks)
	}
	if m.mode != modeList {
		t.Errorf("mode = %v", m.mode)
	}
}

func TestAddForm_Errors(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected string
	}{
		{"empty title", []string{"a", "enter"}, "title cannot be empty"},
		{"bad date", []string{"a", "x", "tab", "soon", "enter"}, "YYYY-MM-DD"},
		{"bad priority", []string{"a", "x", "tab", "tab", "asap", "enter"}, "unknown priority"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			st := taskstore.New()
			m := send(t, New(st, model.FilterAll), test.keys...)
			if m.mode != modeAdd {
				t.Errorf("mode = %v, expected form to stay open", m.mode)
			}
			if !strings.Contains(m.form.err, test.expected) {
				t.Errorf("form error = %q, expected to contain %q", m.form.err, test.expected)
			}
			if st.Len() != 0 {
				t.Errorf("store has %d tasks after failed add", st.Len())
			}
		})
	}
}

func TestAddForm_Cancel(t *testing.T) {
	st := taskstore.New()
	m := send(t, New(st, model.FilterAll), "a", "Buy milk", "esc")
	if m.mode != modeList || st.Len() != 0 {
		t.Errorf("mode = %v, tasks = %d; expected cancelled add", m.mode, st.Len())
	}
}

func TestComplete_Selected(t *testing.T) {
	st := seeded(t)
	m := send(t, New(st, model.FilterAll), " ")

	tasks := st.List()
	if !tasks[0].Completed || tasks[1].Completed || tasks[2].Completed {
		t.Errorf("expected only the first task completed: %+v", tasks)
	}

	// completing again is a no-op
	m = send(t, m, "x")
	if !strings.Contains(m.status, "already done") {
		t.Errorf("status = %q", m.status)
	}
}

func TestComplete_UnderUncompletedFilterHidesTask(t *testing.T) {
	st := seeded(t)
	m := send(t, New(st, model.FilterUncompleted), " ")
	got := strings.Join(visibleTitles(m), ",")
	if got != "Call mom,Buy milk" {
		t.Errorf("items = %s", got)
	}
}

func TestRemove_Selected(t *testing.T) {
	st := seeded(t)
	m := send(t, New(st, model.FilterAll), "j", "d")
	got := strings.Join(visibleTitles(m), ",")
	if got != "Submit report,Buy milk" {
		t.Errorf("items after delete = %s", got)
	}
	if st.Len() != 2 {
		t.Errorf("store has %d tasks", st.Len())
	}
}

func TestRemove_LastRowKeepsSelectionInRange(t *testing.T) {
	st := seeded(t)
	m := send(t, New(st, model.FilterAll), "j", "j", "d")
	if _, ok := m.selected(); !ok {
		t.Fatal("no task selected after deleting the last row")
	}
	m = send(t, m, "d", "d", "d")
	if st.Len() != 0 {
		t.Errorf("store has %d tasks", st.Len())
	}
	if !strings.Contains(m.View(), "No tasks yet") {
		t.Error("empty view should show the empty-state message")
	}
}

func TestClearAll_Confirm(t *testing.T) {
	st := seeded(t)

	m := send(t, New(st, model.FilterAll), "D")
	if m.mode != modeConfirmClear {
		t.Fatalf("mode = %v, expected confirm", m.mode)
	}
	m = send(t, m, "n")
	if st.Len() != 3 || m.mode != modeList {
		t.Errorf("after n: tasks = %d, mode = %v", st.Len(), m.mode)
	}

	m = send(t, m, "D", "y")
	if st.Len() != 0 || len(m.list.Items()) != 0 {
		t.Errorf("after y: store = %d, items = %d", st.Len(), len(m.list.Items()))
	}

	m = send(t, m, "D")
	if m.mode != modeList || m.status != "Nothing to delete" {
		t.Errorf("D on empty store: mode = %v, status = %q", m.mode, m.status)
	}
}

func TestFilterCycle(t *testing.T) {
	st := seeded(t)
	m := send(t, New(st, model.FilterAll), " ") // complete Submit report

	m = send(t, m, "f")
	if m.filter != model.FilterUncompleted || strings.Join(visibleTitles(m), ",") != "Call mom,Buy milk" {
		t.Errorf("uncompleted: filter = %q, items = %v", m.filter, visibleTitles(m))
	}
	m = send(t, m, "f")
	if m.filter != model.FilterCompleted || strings.Join(visibleTitles(m), ",") != "Submit report" {
		t.Errorf("completed: filter = %q, items = %v", m.filter, visibleTitles(m))
	}
	m = send(t, m, "f")
	if m.filter != model.FilterAll || len(visibleTitles(m)) != 3 {
		t.Errorf("all: filter = %q, items = %v", m.filter, visibleTitles(m))
	}
}

func TestSearch(t *testing.T) {
	st := seeded(t)
	m := send(t, New(st, model.FilterAll), "/", "MIL")
	if m.mode != modeSearch {
		t.Fatalf("mode = %v, expected search", m.mode)
	}
	if got := strings.Join(visibleTitles(m), ","); got != "Buy milk" {
		t.Errorf("live search items = %s", got)
	}

	m = send(t, m, "enter")
	if m.mode != modeList || m.query != "MIL" || len(visibleTitles(m)) != 1 {
		t.Errorf("enter should keep query: mode = %v, query = %q, items = %v", m.mode, m.query, visibleTitles(m))
	}

	m = send(t, m, "/", "esc")
	if m.query != "" || len(visibleTitles(m)) != 3 {
		t.Errorf("esc should clear query: query = %q, items = %v", m.query, visibleTitles(m))
	}
}

func TestView_ProgressAndCelebration(t *testing.T) {
	st := seeded(t)
	m := New(st, model.FilterAll)

	m = send(t, m, "j", " ")
	if v := m.View(); !strings.Contains(v, "33% 1/3") {
		t.Errorf("view missing progress 33%%:\n%s", v)
	}

	for _, task := range st.List() {
		st.Complete(task.ID)
	}
	m.refresh()
	v := m.View()
	if !strings.Contains(v, "100% 3/3") || !strings.Contains(v, "All tasks complete") {
		t.Errorf("view missing completion state:\n%s", v)
	}
}

func TestQuit(t *testing.T) {
	m := New(taskstore.New(), model.FilterAll)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestCtrlC_QuitsFromEveryMode(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"list", nil},
		{"add form", []string{"a", "q"}},
		{"search", []string{"/", "q"}},
		{"confirm clear", []string{"D"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := send(t, New(seeded(t), model.FilterAll), test.keys...)
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
			if cmd == nil {
				t.Fatal("ctrl+c should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("ctrl+c should quit")
			}
		})
	}
}

func TestQ_IsTypeableInAddForm(t *testing.T) {
	m := send(t, New(taskstore.New(), model.FilterAll), "a", "q")
	if m.mode != modeAdd || m.form.inputs[fieldTitle].Value() != "q" {
		t.Errorf("mode = %v, title = %q", m.mode, m.form.inputs[fieldTitle].Value())
	}
}

func TestCursorBlink_ReachesFocusedInput(t *testing.T) {
	tests := []struct {
		name   string
		open   string
		cursor func(Model) bool
	}{
		{"add form", "a", func(m Model) bool { return m.form.inputs[fieldTitle].Cursor.Blink }},
		{"search", "/", func(m Model) bool { return m.search.Cursor.Blink }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			next, cmd := New(seeded(t), model.FilterAll).Update(keyMsg(test.open))
			m := next.(Model)
			if cmd == nil {
				t.Fatal("focusing the input should start the cursor blink")
			}
			before := test.cursor(m)

			next, cmd = m.Update(cmd())
			m = next.(Model)
			if test.cursor(m) == before {
				t.Error("blink message did not reach the focused input")
			}
			if cmd == nil {
				t.Error("input should schedule the next blink")
			}
		})
	}
}
