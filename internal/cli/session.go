package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/idilsaglam/prioritodo/internal/model"
	"github.com/idilsaglam/prioritodo/internal/store/taskstore"
	"github.com/idilsaglam/prioritodo/internal/ui"
	"github.com/idilsaglam/prioritodo/internal/view"
)

type session struct {
	store *taskstore.Store
	opt   Options
}

// RunSession executes script commands line by line against st.
// A failing line is reported and the session carries on; the exit code is 1
// if any line failed.
func RunSession(r io.Reader, st *taskstore.Store, opt Options) int {
	s := session{store: st, opt: opt}
	sc := bufio.NewScanner(r)
	failed := false
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := splitArgs(line)
		if err == nil {
			err = s.exec(args)
		}
		if err != nil {
			ui.Fail(fmt.Sprintf("line %d: %v", n, err))
			failed = true
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail("read script: " + err.Error())
		return 1
	}
	if failed {
		return 1
	}
	return 0
}

func (s *session) exec(args []string) error {
	if len(args) == 0 {
		return errors.New("empty command")
	}
	cmd, a := args[0], args[1:]
	switch cmd {
	case "add":
		return s.add(a)
	case "done":
		return s.done(a)
	case "rm":
		return s.remove(a)
	case "clear":
		if len(a) != 0 {
			return errors.New("usage: clear")
		}
		s.store.ClearAll()
		ui.OK("cleared")
		return nil
	case "ls":
		return s.list(a)
	case "progress":
		if len(a) != 0 {
			return errors.New("usage: progress")
		}
		s.progress()
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (s *session) add(a []string) error {
	fs := newFlagSet("add")
	prio := fs.String("p", string(model.PriorityMedium), "priority")
	due := fs.String("d", "", "due date")
	if err := fs.Parse(a); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	p, err := model.ParsePriority(*prio)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	d, err := model.ParseDue(*due)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	id, err := s.store.Add(strings.Join(fs.Args(), " "), d, p)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	ui.OK("added " + shortID(id))
	return nil
}

func (s *session) done(a []string) error {
	if len(a) != 1 {
		return errors.New("usage: done <index|id>")
	}
	id, err := s.resolve(a[0])
	if err != nil {
		return fmt.Errorf("done: %w", err)
	}
	t, found := s.store.Get(id)
	if !found {
		fmt.Fprintln(ui.Out, ui.Dim("no task "+a[0]+", skipped"))
		return nil
	}
	s.store.Complete(id)
	if t.Completed {
		fmt.Fprintln(ui.Out, ui.Dim("already completed"))
		return nil
	}
	ui.OK("completed " + t.Title)
	return nil
}

func (s *session) remove(a []string) error {
	if len(a) != 1 {
		return errors.New("usage: rm <index|id>")
	}
	id, err := s.resolve(a[0])
	if err != nil {
		return fmt.Errorf("rm: %w", err)
	}
	t, found := s.store.Get(id)
	s.store.Remove(id)
	if !found {
		fmt.Fprintln(ui.Out, ui.Dim("no task "+a[0]+", skipped"))
		return nil
	}
	ui.OK("removed " + t.Title)
	return nil
}

func (s *session) list(a []string) error {
	fs := newFlagSet("ls")
	filter := fs.String("f", "all", "filter")
	if err := fs.Parse(a); err != nil {
		return fmt.Errorf("ls: %w", err)
	}
	f, err := model.ParseFilter(*filter)
	if err != nil {
		return fmt.Errorf("ls: %w", err)
	}
	renderList(s.store.List(), f, strings.Join(fs.Args(), " "), s.opt.Group)
	return nil
}

func (s *session) progress() {
	p := view.ComputeProgress(s.store.List())
	fmt.Fprintf(ui.Out, "%d/%d %d%%\n", p.CompletedCount, p.TotalCount, p.Percent)
	if p.AllComplete {
		fmt.Fprintln(ui.Out, ui.C(ui.Current().Success, ui.Current().SymTrophy+" all tasks complete"))
	}
}

// resolve maps a 1-based index or an id (or unique id prefix) to a task id.
// Unmatched ids are returned unchanged so the store can treat them as no-ops.
func (s *session) resolve(arg string) (string, error) {
	tasks := s.store.List()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(tasks) {
			return "", fmt.Errorf("index out of range: have %d, got %d", len(tasks), n)
		}
		return tasks[n-1].ID, nil
	}
	match := ""
	for _, t := range tasks {
		if t.ID == arg {
			return arg, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("ambiguous id %q", arg)
			}
			match = t.ID
		}
	}
	if match != "" {
		return match, nil
	}
	return arg, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// splitArgs tokenizes a script line with shell quoting rules. Operators such
// as ; & | < > end a shell command, so they must be quoted inside titles.
func splitArgs(line string) ([]string, error) {
	p := shellwords.NewParser()
	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("parse line: %w", err)
	}
	if p.Position >= 0 {
		return nil, fmt.Errorf("parse line: unquoted operator at column %d", p.Position+1)
	}
	return args, nil
}
