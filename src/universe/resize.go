package universe

import "fmt"

//Resize returns the new grid grown or shrunk by the deltas
//the new grid is allocated dead first, then the overlapping cells are copied
func Resize(g *Grid, deltaWidth int, deltaHeight int) (*Grid, error) {
	h, w := g.height+deltaHeight, g.width+deltaWidth
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: resize %d x %d to %d x %d", ErrInvalidDimension, g.height, g.width, h, w)
	}
	r := createGrid(h, w)
	for y := 0; y < h && y < g.height; y++ {
		copy(r.cells[y], g.cells[y])
	}
	return r, nil
}
