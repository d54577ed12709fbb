package main

import (
	"errors"
	"fmt"
	"io"
	"lifeedit/src/editor"
	"lifeedit/src/patterns"
	"lifeedit/src/universe"
	"lifeedit/src/view"
	"log/slog"
	"os"
	"strings"

	"github.com/integrii/flaggy"
)

const defaultPattern = "glider"

type EnvOptions struct {
	editor      bool
	interactive bool
	pattern     string
	file        string
	width       int
	height      int
	list        bool
	logFile     string
	debug       bool
	noColor     bool
}

func main() {
	eo, uo := initOptions()

	closeLog, err := initLog(eo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if eo.list {
		for _, name := range patterns.Names() {
			p, _ := patterns.Lookup(name)
			fmt.Printf("  %-10s %s\n", name, p.Descr)
		}
		return
	}

	if err := run(eo, uo); err != nil {
		slog.Error("exiting", "error", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

func run(eo *EnvOptions, uo *universe.Options) error {
	ed, g, err := loadStart(eo)
	if err != nil {
		return err
	}

	if eo.interactive || eo.editor {
		ui, err := view.NewConsoleUI(*uo)
		if err != nil {
			return err
		}
		st, err := ui.Run(ed, g)
		if errors.Is(err, view.ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Finished, generation: %v, live cells: %v\n", st.Generation, st.LiveCells)
		return nil
	}

	out := view.NewConsoleOut(os.Stdout, true, !eo.noColor)
	out.Start(*uo, g)
	universe.NewSimulation(g, uo).Run(out, nil)
	return nil
}

//loadStart builds the starting grid, with -e it is handed to the editor instead
//the editor starts blank unless a pattern or a file was given
func loadStart(eo *EnvOptions) (*editor.Editor, *universe.Grid, error) {
	var g *universe.Grid
	var err error
	switch {
	case eo.file != "":
		g, err = patterns.LoadFile(eo.file)
	case eo.pattern != "":
		g, err = patterns.Load(eo.pattern)
	case eo.editor:
		ed, err := editor.NewBlank(eo.height, eo.width)
		return ed, nil, err
	default:
		g, err = patterns.Load(defaultPattern)
	}
	if err != nil {
		return nil, nil, err
	}
	if eo.editor {
		return editor.New(g), nil, nil
	}
	return nil, g, nil
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultOptions
	uo = &o
	eo = &EnvOptions{
		width:  universe.DefWidth,
		height: universe.DefHeight,
	}
	flaggy.SetName("lifeedit")
	flaggy.SetDescription("Conway's Game of Life on a wrap-around grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Bool(&eo.editor, "e", "editor", "Start the interactive editor, blank unless a pattern or a file is given")
	flaggy.String(&eo.pattern, "p", "pattern", "Starting pattern ["+strings.Join(patterns.Names(), "|")+"], default "+defaultPattern)
	flaggy.String(&eo.file, "f", "file", "Load the starting pattern from a YAML file")
	flaggy.Int(&eo.width, "x", "width", "Width of the editor grid")
	flaggy.Int(&eo.height, "y", "height", "Height of the editor grid")
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the generations), for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations, 0 is unlimited")
	flaggy.Bool(&uo.StopWhenStable, "", "stable", "Stop when the grid stops changing")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Use the full screen terminal UI")
	flaggy.Bool(&eo.list, "l", "list", "List the starting patterns")
	flaggy.String(&eo.logFile, "", "log", "Write the log to this file")
	flaggy.Bool(&eo.debug, "d", "debug", "Log every generation")
	flaggy.Bool(&eo.noColor, "", "noColor", "Disable colours in the plain output")

	flaggy.Parse()

	if _, ok := patterns.Lookup(eo.pattern); eo.pattern != "" && !ok {
		flaggy.ShowHelpAndExit("unknown pattern " + eo.pattern)
	}
	if eo.pattern != "" && eo.file != "" {
		flaggy.ShowHelpAndExit("pattern and file are mutually exclusive")
	}
	if eo.width <= 0 || eo.height <= 0 {
		flaggy.ShowHelpAndExit("width and height must be positive")
	}
	if uo.MaxSteps < 0 {
		flaggy.ShowHelpAndExit("maxSteps must not be negative")
	}

	return
}

//initLog installs the default logger, the terminal is the display so nothing goes to stderr by default
func initLog(eo *EnvOptions) (func(), error) {
	level := slog.LevelInfo
	if eo.debug {
		level = slog.LevelDebug
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if eo.logFile != "" {
		f, err := os.OpenFile(eo.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}
