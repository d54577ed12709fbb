package editor

import (
	"lifeedit/src/universe"
	"log/slog"
)

//Command is one discrete editor input, keycodes are translated by the caller
type Command uint8

const (
	MoveUp Command = iota
	MoveDown
	MoveLeft
	MoveRight
	ToggleAndAdvanceRow
	ToggleAndAdvanceCol
	GrowWidth
	ShrinkWidth
	GrowHeight
	ShrinkHeight
	Commit
)

var commandNames = [...]string{
	MoveUp:              "move up",
	MoveDown:            "move down",
	MoveLeft:            "move left",
	MoveRight:           "move right",
	ToggleAndAdvanceRow: "toggle, next row",
	ToggleAndAdvanceCol: "toggle, next column",
	GrowWidth:           "grow width",
	ShrinkWidth:         "shrink width",
	GrowHeight:          "grow height",
	ShrinkHeight:        "shrink height",
	Commit:              "run simulation",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

//Editor owns a grid and a cursor over it
//the cursor always stays inside the grid: moves out of it are ignored, resizing clamps it
type Editor struct {
	grid      *universe.Grid
	row, col  int
	committed bool
	log       *slog.Logger
}

//New returns an editor over g with the cursor in the top-left corner
//the editor takes ownership of g
func New(g *universe.Grid) *Editor {
	return &Editor{grid: g, log: slog.Default().With("component", "editor")}
}

//NewBlank returns an editor over an all-dead height x width grid
func NewBlank(height, width int) (*Editor, error) {
	g, err := universe.NewGrid(height, width)
	if err != nil {
		return nil, err
	}
	return New(g), nil
}

//Grid returns the edited grid
func (e *Editor) Grid() *universe.Grid { return e.grid }

//Cursor returns the cursor position
func (e *Editor) Cursor() (row, col int) { return e.row, e.col }

//Committed reports whether Commit has been applied
func (e *Editor) Committed() bool { return e.committed }

//Apply interprets one command and reports whether the editor is committed
//commands whose precondition does not hold are no-ops, so is everything after Commit
func (e *Editor) Apply(c Command) bool {
	if e.committed {
		return true
	}
	h, w := e.grid.Height(), e.grid.Width()

	switch c {
	case MoveUp:
		if e.row > 0 {
			e.row--
		}
	case MoveDown:
		if e.row < h-1 {
			e.row++
		}
	case MoveLeft:
		if e.col > 0 {
			e.col--
		}
	case MoveRight:
		if e.col < w-1 {
			e.col++
		}
	case ToggleAndAdvanceRow:
		e.toggle()
		if e.row < h-1 {
			e.row++
		}
	case ToggleAndAdvanceCol:
		if e.col < w-1 {
			e.toggle()
			e.col++
		}
	case GrowWidth:
		e.resize(1, 0)
	case ShrinkWidth:
		e.resize(-1, 0)
	case GrowHeight:
		e.resize(0, 1)
	case ShrinkHeight:
		e.resize(0, -1)
	case Commit:
		e.committed = true
		e.log.Debug("pattern committed", "height", h, "width", w, "live_cells", e.grid.LiveCells())
	}
	return e.committed
}

func (e *Editor) toggle() {
	//the cursor invariant keeps this in bounds
	_ = e.grid.Toggle(e.row, e.col)
}

func (e *Editor) resize(dw, dh int) {
	g, err := universe.Resize(e.grid, dw, dh)
	if err != nil {
		//shrinking below one row or column
		return
	}
	e.grid = g
	e.row = min(e.row, g.Height()-1)
	e.col = min(e.col, g.Width()-1)
	e.log.Debug("grid resized", "height", g.Height(), "width", g.Width())
}
