package universe

//Tick calculates the next generation
//every count is taken from g, the result is written to the new grid, g is left untouched
func Tick(g *Grid) *Grid {
	next := createGrid(g.height, g.width)
	g.Walk(func(y int, x int, c Cell) {
		next.cells[y][x] = Cell(NextState(bool(c), g.NeighborCount(y, x)))
	})
	return next
}

//NextState applies the Life rule to one cell with n live neighbours
func NextState(alive bool, n int) bool {
	if n < 2 {
		return false
	} else if n > 3 {
		return false
	} else if n == 3 {
		return true
	}
	return alive
}
