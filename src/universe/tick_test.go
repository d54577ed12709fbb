package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 2 || n == 3, NextState(true, n), "alive, %d neighbours", n)
		assert.Equal(t, n == 3, NextState(false, n), "dead, %d neighbours", n)
	}
}

func TestTick_DoesNotAlterInput(t *testing.T) {
	g := randomGrid(20, 7)
	before := g.Clone()
	next := Tick(g)
	assert.True(t, g.Equal(before))
	assert.NotSame(t, g, next)
}

func TestTick_AllDeadStaysDead(t *testing.T) {
	for _, d := range [][2]int{{1, 1}, {1, 7}, {5, 3}, {12, 12}} {
		g, err := NewGrid(d[0], d[1])
		require.NoError(t, err)
		next := Tick(g)
		assert.Equal(t, d[0], next.Height())
		assert.Equal(t, d[1], next.Width())
		assert.Equal(t, 0, next.LiveCells())
	}
}

func TestTick_BlinkerOscillates(t *testing.T) {
	// On a 3x3 torus every cell of the vertical phase would see all three
	// live cells, so the check uses a 5x5 field.
	g := mustPattern(t,
		".....",
		".....",
		".XXX.",
		".....",
		".....",
	)
	once := Tick(g)
	assert.Equal(t, []string{
		".....",
		"..X..",
		"..X..",
		"..X..",
		".....",
	}, once.Rows('X', '.'))
	assert.True(t, Tick(once).Equal(g))
}

func TestTick_ThreeByThreeTorusFillsThenDies(t *testing.T) {
	g := mustPattern(t,
		"...",
		"XXX",
		"...",
	)
	twice := Tick(Tick(g))
	assert.Equal(t, 3, twice.Height())
	assert.Equal(t, 3, twice.Width())
	// Every cell on a 3x3 torus is adjacent to the whole XXX row.
	assert.Equal(t, []string{"XXX", "XXX", "XXX"}, Tick(g).Rows('X', '.'))
	assert.Equal(t, 0, twice.LiveCells())
}

func TestTick_BlockIsStill(t *testing.T) {
	g := mustPattern(t,
		"....",
		".XX.",
		".XX.",
		"....",
	)
	assert.True(t, Tick(g).Equal(g))

	big := mustPattern(t,
		"......",
		"......",
		"..XX..",
		"..XX..",
		"......",
	)
	assert.True(t, Tick(Tick(big)).Equal(big))
}

func TestTick_GliderWrapsAround(t *testing.T) {
	g := mustPattern(t,
		".X....",
		"..X...",
		"XXX...",
		"......",
		"......",
		"......",
	)
	// A glider moves one cell diagonally every four generations, so after
	// 4*6 generations it is back where it started.
	next := g
	for i := 0; i < 24; i++ {
		next = Tick(next)
		assert.Equal(t, 5, next.LiveCells(), "generation %d", i+1)
	}
	assert.True(t, next.Equal(g))
}

func TestResize_Identity(t *testing.T) {
	g := randomGrid(9, 3)
	r, err := Resize(g, 0, 0)
	require.NoError(t, err)
	assert.True(t, r.Equal(g))
	assert.NotSame(t, g, r)
}

func TestResize_GrowThenShrink(t *testing.T) {
	g := mustPattern(t,
		"X.X",
		".XX",
	)
	grown, err := Resize(g, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"X.X..",
		".XX..",
		".....",
		".....",
		".....",
	}, grown.Rows('X', '.'))

	back, err := Resize(grown, -2, -3)
	require.NoError(t, err)
	assert.True(t, back.Equal(g))
}

func TestResize_Shrink(t *testing.T) {
	g := mustPattern(t,
		"X.X",
		".XX",
		"XXX",
	)
	r, err := Resize(g, -1, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"X.", ".X"}, r.Rows('X', '.'))
}

func TestResize_InvalidDimension(t *testing.T) {
	g := mustPattern(t, "X.", "..")
	_, err := Resize(g, -2, 0)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = Resize(g, 0, -5)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
