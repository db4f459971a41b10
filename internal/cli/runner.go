package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/prioritodo/internal/model"
	"github.com/idilsaglam/prioritodo/internal/store/taskstore"
	"github.com/idilsaglam/prioritodo/internal/tui"
	"github.com/idilsaglam/prioritodo/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group  bool         // ls grouped by pending/done
	Filter model.Filter // initial filter for the interactive list
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "tui":
		if len(a) != 0 {
			ui.Fail("usage: prioritodo tui")
			return 2
		}
		return doTUI(opt)

	case "run":
		if len(a) > 1 {
			ui.Fail("usage: prioritodo run [file|-]")
			return 2
		}
		path := "-"
		if len(a) == 1 {
			path = a[0]
		}
		return doScript(path, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Err)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Out, `prioritodo - a priority-sorted todo list

Usage:
  prioritodo [flags] <subcommand> [args]

Subcommands:
  tui                Interactive list (tasks live until you quit)
  run [file|-]       Run a scripted session from a file or stdin

Script commands:
  add [-p high|medium|low] [-d YYYY-MM-DD] <title...>
  done <index|id>    Mark the task at 1-based index (or id) complete
  rm <index|id>      Remove a task
  clear              Remove every task
  ls [-f all|completed|uncompleted] [query...]
  progress           Print completed/total and percentage

Examples:
  prioritodo tui
  printf 'add -p high "Submit report"\nls\n' | prioritodo run
`)
}

// -------------- subcommand impls ----------------

func doTUI(opt Options) int {
	st := taskstore.New()
	if err := tui.Run(st, opt.Filter); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doScript(path string, opt Options) int {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			ui.Fail("open script: " + err.Error())
			return 1
		}
		defer f.Close()
		r = f
	}
	return RunSession(r, taskstore.New(), opt)
}
