package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logger"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}

	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	plain := flag.Bool("plain", false, "print lists as plain text")
	file := flag.String("file", conf.File, "data file")
	theme := flag.String("theme", conf.Theme, "color theme: classic, neon or mono")
	color := flag.Bool("color", false, "force colors when output is not a terminal")
	noColor := flag.Bool("no-color", false, "disable colors")
	flag.Parse()

	ui.SetTheme(*theme)
	ui.SetColorForcing(*color, *noColor)
	log := logger.New(conf.LogLevel, os.Stderr)

	store, err := jsonstore.New(*file, conf.Title)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group:       *groupPending,
		Plain:       *plain,
		Store:       store,
		Log:         log,
		Interactive: tui.Run,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
