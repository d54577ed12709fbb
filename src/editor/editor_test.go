package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeedit/src/universe"
)

func newEditor(t *testing.T, height, width int) *Editor {
	t.Helper()
	e, err := NewBlank(height, width)
	require.NoError(t, err)
	return e
}

func apply(e *Editor, cmds ...Command) {
	for _, c := range cmds {
		e.Apply(c)
	}
}

func rows(e *Editor) []string {
	return e.Grid().Rows('X', '.')
}

func TestNewBlank_InvalidDimension(t *testing.T) {
	_, err := NewBlank(0, 3)
	assert.ErrorIs(t, err, universe.ErrInvalidDimension)
}

func TestEditor_Moves(t *testing.T) {
	e := newEditor(t, 3, 4)
	apply(e, MoveDown, MoveDown, MoveRight, MoveRight, MoveRight)
	row, col := e.Cursor()
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)

	// at the bottom-right corner further moves are no-ops
	apply(e, MoveDown, MoveRight)
	row, col = e.Cursor()
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)

	apply(e, MoveUp, MoveLeft)
	row, col = e.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
}

func TestEditor_MoveLeftAtColumnZeroIsNoop(t *testing.T) {
	e := newEditor(t, 3, 3)
	apply(e, MoveDown, ToggleAndAdvanceRow)
	before := e.Grid().Clone()
	row, col := e.Cursor()

	assert.False(t, e.Apply(MoveLeft))
	r2, c2 := e.Cursor()
	assert.Equal(t, row, r2)
	assert.Equal(t, col, c2)
	assert.True(t, before.Equal(e.Grid()))
}

func TestEditor_MoveUpAtRowZeroIsNoop(t *testing.T) {
	e := newEditor(t, 2, 2)
	e.Apply(MoveUp)
	row, col := e.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
}

func TestEditor_ToggleAndAdvanceRow(t *testing.T) {
	e := newEditor(t, 3, 2)
	apply(e, ToggleAndAdvanceRow, ToggleAndAdvanceRow, ToggleAndAdvanceRow)
	assert.Equal(t, []string{"X.", "X.", "X."}, rows(e))
	row, _ := e.Cursor()
	assert.Equal(t, 2, row, "the row does not wrap")

	// still toggles on the last row
	e.Apply(ToggleAndAdvanceRow)
	assert.Equal(t, []string{"X.", "X.", ".."}, rows(e))
}

func TestEditor_ToggleAndAdvanceCol(t *testing.T) {
	e := newEditor(t, 1, 3)
	apply(e, ToggleAndAdvanceCol, ToggleAndAdvanceCol)
	assert.Equal(t, []string{"XX."}, rows(e))
	_, col := e.Cursor()
	assert.Equal(t, 2, col)

	// the last column does not satisfy the precondition
	e.Apply(ToggleAndAdvanceCol)
	assert.Equal(t, []string{"XX."}, rows(e))
	_, col = e.Cursor()
	assert.Equal(t, 2, col)
}

func TestEditor_GrowKeepsCells(t *testing.T) {
	e := newEditor(t, 2, 2)
	apply(e, ToggleAndAdvanceCol, MoveDown, ToggleAndAdvanceRow)
	apply(e, GrowWidth, GrowHeight)
	assert.Equal(t, []string{"X..", ".X.", "..."}, rows(e))
	row, col := e.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}

func TestEditor_ShrinkClampsCursor(t *testing.T) {
	e := newEditor(t, 3, 3)
	apply(e, MoveDown, MoveDown, MoveRight, MoveRight)
	e.Apply(ShrinkWidth)
	row, col := e.Cursor()
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)
	assert.Equal(t, 2, e.Grid().Width())

	e.Apply(ShrinkHeight)
	row, _ = e.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, e.Grid().Height())
}

func TestEditor_ShrinkBelowOneIsNoop(t *testing.T) {
	e := newEditor(t, 1, 1)
	g := e.Grid()
	apply(e, ShrinkWidth, ShrinkHeight)
	assert.Same(t, g, e.Grid())
	assert.Equal(t, 1, e.Grid().Height())
	assert.Equal(t, 1, e.Grid().Width())
}

func TestEditor_Commit(t *testing.T) {
	e := newEditor(t, 2, 2)
	e.Apply(ToggleAndAdvanceRow)
	assert.False(t, e.Committed())

	assert.True(t, e.Apply(Commit))
	assert.True(t, e.Committed())

	// commands after commit are ignored
	assert.True(t, e.Apply(ToggleAndAdvanceRow))
	assert.True(t, e.Apply(GrowWidth))
	assert.Equal(t, []string{"X.", ".."}, rows(e))
}

func TestEditor_NewKeepsGrid(t *testing.T) {
	g, err := universe.LoadPattern([]string{".X", "X."}, 'X', '.')
	require.NoError(t, err)
	e := New(g)
	assert.Same(t, g, e.Grid())
	e.Apply(ToggleAndAdvanceCol)
	assert.Equal(t, []string{"XX", "X."}, rows(e))
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "move up", MoveUp.String())
	assert.Equal(t, "run simulation", Commit.String())
	assert.Equal(t, "unknown", Command(200).String())
}
