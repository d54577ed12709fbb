package universe

import (
	"fmt"
	"strings"
)

type Cell bool

//Grid is the rectangular field where cells are living
//the opposite edges are adjacent when neighbours are counted
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

//NewGrid creates the grid with all cells dead
func NewGrid(height int, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrInvalidDimension, height, width)
	}
	return createGrid(height, width), nil
}

//LoadPattern builds the grid from the text rows
//height is the rows count, width is the longest row, short rows are padded with dead cells
func LoadPattern(rows []string, alive rune, dead rune) (*Grid, error) {
	if alive == dead {
		return nil, fmt.Errorf("%w: alive and dead are both %q", ErrMalformedPattern, alive)
	}
	width := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > width {
			width = n
		}
	}
	g, err := NewGrid(len(rows), width)
	if err != nil {
		return nil, fmt.Errorf("empty pattern: %w", err)
	}
	for y, r := range rows {
		for x, c := range []rune(r) {
			switch c {
			case alive:
				g.cells[y][x] = true
			case dead:
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d, col %d", ErrMalformedPattern, c, y, x)
			}
		}
	}
	return g, nil
}

func (g *Grid) Height() int { return g.height }

func (g *Grid) Width() int { return g.width }

//Get returns the cell state at row, col
func (g *Grid) Get(row int, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	return bool(g.cells[row][col]), nil
}

//Set sets the cell state at row, col
func (g *Grid) Set(row int, col int, alive bool) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.cells[row][col] = Cell(alive)
	return nil
}

//Toggle inverses the cell state at row, col
func (g *Grid) Toggle(row int, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.cells[row][col] = !g.cells[row][col]
	return nil
}

//Clone returns the deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := createGrid(g.height, g.width)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

//NeighborCount counts live cells around row, col
//each axis wraps on its own: -1 is the last index, the size is 0
func (g *Grid) NeighborCount(row int, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		y := wrap(row+dy, g.height)
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.cells[y][wrap(col+dx, g.width)] {
				n++
			}
		}
	}
	return n
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	n := 0
	g.Walk(func(_ int, _ int, c Cell) {
		if c {
			n++
		}
	})
	return n
}

//Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

//Rows returns the text form of the grid accepted by LoadPattern
func (g *Grid) Rows(alive rune, dead rune) []string {
	rows := make([]string, 0, g.height)
	var b strings.Builder
	for _, l := range g.cells {
		b.Reset()
		for _, c := range l {
			if c {
				b.WriteRune(alive)
			} else {
				b.WriteRune(dead)
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

//Walk walks the entire grid row by row and calls cb for each cell
func (g *Grid) Walk(cb func(row int, col int, c Cell)) {
	for y := range g.cells {
		for x := range g.cells[y] {
			cb(y, x, g.cells[y][x])
		}
	}
}

func (g *Grid) check(row int, col int) error {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return fmt.Errorf("%w: (%d, %d) outside %d x %d", ErrOutOfBounds, row, col, g.height, g.width)
	}
	return nil
}

func wrap(i int, size int) int {
	switch {
	case i < 0:
		return size - 1
	case i >= size:
		return 0
	}
	return i
}

//createGrid allocates the rows over one backing slice
func createGrid(height int, width int) *Grid {
	g := Grid{width: width, height: height, cells: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range g.cells {
		start := width * i
		g.cells[i] = b[start : start+width : start+width]
	}
	return &g
}
