package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/prioritodo/internal/cli"
	"github.com/idilsaglam/prioritodo/internal/model"
	"github.com/idilsaglam/prioritodo/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group ls output by pending/done")
	theme := flag.String("theme", envOr("PRIORITODO_THEME", "classic"), "color theme: classic, neon or mono")
	filter := flag.String("filter", "all", "initial filter for tui: all, completed or uncompleted")
	noColor := flag.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable ANSI colors")
	forceColor := flag.Bool("force-color", false, "emit ANSI colors even when not a TTY")
	flag.Parse()

	ui.SetTheme(*theme)
	if *noColor || *forceColor {
		ui.SetColorForcing(*forceColor, *noColor)
	}

	f, err := model.ParseFilter(*filter)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group:  *groupPending,
		Filter: f,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
