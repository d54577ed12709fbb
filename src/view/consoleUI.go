package view

import (
	"bytes"
	"errors"
	"fmt"
	"lifeedit/src/editor"
	"lifeedit/src/universe"
	"log/slog"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

//ErrAborted is returned by Run when the user leaves the editor without committing
var ErrAborted = errors.New("editing aborted")

type uiMode int

const (
	modeEditing uiMode = iota
	modeSimulating
)

type keyBindings struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

type frame struct {
	seq    int
	grid   *universe.Grid
	status universe.Status
}

//ConsoleUI is the full screen terminal front-end
//it hosts the grid editor and then the simulation in one gocui main loop
type ConsoleUI struct {
	g        *gocui.Gui
	options  universe.Options
	mode     uiMode
	ed       *editor.Editor
	editKeys []keyBindings
	simKeys  []keyBindings

	cmds  universe.Commands
	seq   int //written by the simulation goroutine only
	frame frame
	done  chan struct{}
	final universe.Status
	log   *slog.Logger

	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("paused", aurora.BlueFg).String(),
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

//NewConsoleUI initialises the terminal
//the caller must call Run, which also releases the terminal
func NewConsoleUI(o universe.Options) (*ConsoleUI, error) {
	var err error
	t := ConsoleUI{
		options:    o,
		cmds:       make(universe.Commands, 4),
		done:       make(chan struct{}),
		log:        slog.Default().With("component", "ui"),
		liveFiller: aurora.Green("██").BgBrightGreen().String(),
		deadFiller: "░░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}

	t.editKeys = []keyBindings{
		{gocui.KeyArrowUp, "↑↓←→", "Move", t.editCmd(editor.MoveUp)},
		{gocui.KeyArrowDown, "", "", t.editCmd(editor.MoveDown)},
		{gocui.KeyArrowLeft, "", "", t.editCmd(editor.MoveLeft)},
		{gocui.KeyArrowRight, "", "", t.editCmd(editor.MoveRight)},
		{gocui.KeyEnter, "Enter", "Toggle, next row", t.editCmd(editor.ToggleAndAdvanceRow)},
		{gocui.KeySpace, "Space", "Toggle, next column", t.editCmd(editor.ToggleAndAdvanceCol)},
		{'l', "L/H", "Width +/-", t.editCmd(editor.GrowWidth)},
		{'h', "", "", t.editCmd(editor.ShrinkWidth)},
		{'j', "J/K", "Height +/-", t.editCmd(editor.GrowHeight)},
		{'k', "", "", t.editCmd(editor.ShrinkHeight)},
		{'q', "Q", "Run simulation", t.editCmd(editor.Commit)},
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
	}
	t.simKeys = []keyBindings{
		{'p', "P", "Pause/Resume", t.control(universe.ControlPause)},
		{'n', "N", "Next step", t.control(universe.ControlStep)},
		{'q', "Q", "Exit", t.cmdQuit},
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(); err != nil {
		t.g.Close()
		return nil, err
	}
	return &t, nil
}

//Run shows the editor over ed when it is not nil, otherwise simulates g straight away
//it returns the last simulation status once the user quits
func (t *ConsoleUI) Run(ed *editor.Editor, g *universe.Grid) (universe.Status, error) {
	defer t.g.Close()
	if ed != nil {
		t.mode = modeEditing
		t.ed = ed
		t.g.Cursor = true
	} else {
		t.startSimulation(g)
	}

	err := t.g.MainLoop()
	if t.mode == modeEditing {
		if err == gocui.ErrQuit {
			err = ErrAborted
		}
		return universe.Status{}, err
	}

	t.stopSimulation()
	if err == gocui.ErrQuit {
		err = nil
	}
	return t.final, err
}

//stopSimulation ends the simulation goroutine and waits for it
//closing the channel reads as quit however many commands are still queued
func (t *ConsoleUI) stopSimulation() {
	close(t.cmds)
	<-t.done
}

//Render implements universe.Viewer, it is called from the simulation goroutine
func (t *ConsoleUI) Render(g *universe.Grid, st universe.Status) {
	t.seq++
	f := frame{seq: t.seq, grid: g.Clone(), status: st}
	t.g.Update(func(_ *gocui.Gui) error {
		//updates are delivered by separate goroutines, keep the newest one
		if f.seq > t.frame.seq {
			t.frame = f
		}
		return nil
	})
}

func (t *ConsoleUI) startSimulation(g *universe.Grid) {
	t.mode = modeSimulating
	t.g.Cursor = false
	t.frame = frame{grid: g.Clone()}
	sim := universe.NewSimulation(g, &t.options)
	go func() {
		defer close(t.done)
		t.final = sim.Run(t, t.cmds)
	}()
}

func (t *ConsoleUI) initKeyBindings() error {
	seen := map[interface{}]bool{}
	for _, kb := range append(t.editKeys, t.simKeys...) {
		key := kb.key
		if seen[key] {
			continue
		}
		seen[key] = true
		if err := t.g.SetKeybinding("", key, gocui.ModNone, func(_ *gocui.Gui, _ *gocui.View) error { return t.dispatch(key) }); err != nil {
			return err
		}
	}
	return nil
}

//dispatch runs the handler bound to key in the current mode
func (t *ConsoleUI) dispatch(key interface{}) error {
	for _, kb := range t.keys() {
		if kb.key == key {
			return kb.handler()
		}
	}
	return nil
}

func (t *ConsoleUI) keys() []keyBindings {
	if t.mode == modeEditing {
		return t.editKeys
	}
	return t.simKeys
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 12

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		_ = g.DeleteView("help")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("status", 0, 3, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
	}
	if _, err := g.SetCurrentView("field"); err != nil {
		return err
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
	}

	t.renderStatus(g)
	t.renderHelp(g)
	if t.mode == modeEditing {
		v.Title = "Editor"
		return t.renderField(v, t.ed.Grid(), true)
	}
	v.Title = "Field"
	return t.renderField(v, t.frame.grid, false)
}

func (t *ConsoleUI) renderField(v *gocui.View, a *universe.Grid, withCursor bool) error {
	//the entire field is redrawing at once
	v.Clear()
	if a == nil {
		return nil
	}

	crop := false
	maxW, maxH := v.Size()
	cellW := len([]rune(t.deadFiller))
	if a.Width()*cellW > maxW || a.Height() > maxH {
		crop = true
	}

	var b bytes.Buffer
	rows := a.Rows('X', '.')
	for i, l := range rows {
		//discard the data outside the view area
		if i >= maxH {
			break
		}
		if i != 0 {
			b.WriteByte('\n')
		}
		if crop && i == (maxH-1) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for j, e := range l {
			if (j+1)*cellW > maxW {
				break
			}
			if e == 'X' {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())

	if withCursor {
		row, col := t.ed.Cursor()
		if err := v.SetCursor(col*cellW, row); err != nil {
			//cursor is outside the visible area
			t.log.Debug("cursor not shown", "row", row, "col", col, "error", err)
		}
	}
	return nil
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	v, e := g.View("status")
	if e != nil {
		return
	}
	v.Clear()
	if t.mode == modeEditing {
		gr := t.ed.Grid()
		row, col := t.ed.Cursor()
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", gr.Width(), gr.Height()))
		_, _ = fmt.Fprintln(v, t.renderProp("Cursor", "row %v, col %v", row, col))
		_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", gr.LiveCells()))
		return
	}
	s := t.frame.status
	_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
	_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.options.Interval))
	_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v", maxSteps(t.options.MaxSteps)))
}

func (t *ConsoleUI) renderHelp(g *gocui.Gui) {
	v, e := g.View("help")
	if e != nil {
		return
	}
	v.Clear()
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	first := true
	for _, k := range t.keys() {
		if k.name == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	_, _ = fmt.Fprintln(v, b.String())
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) editCmd(c editor.Command) func() error {
	return func() error {
		if t.ed.Apply(c) {
			t.startSimulation(t.ed.Grid())
		}
		return nil
	}
}

func (t *ConsoleUI) control(c universe.Control) func() error {
	return func() error {
		select {
		case t.cmds <- c:
		default:
			t.log.Warn("command dropped, simulation is busy", "control", c)
		}
		return nil
	}
}

func (t *ConsoleUI) cmdQuit() error {
	return gocui.ErrQuit
}
