package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
)

// flat builds the 3×2 maze whose weights are all zero: the top row and all
// three verticals are open, the bottom row is walled.
func flat(t *testing.T) *maze.State {
	t.Helper()
	s, err := maze.Construct(3, 2, maze.WithMaxWeight(1))
	require.NoError(t, err)

	return s
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestASCII_Golden(t *testing.T) {
	s := flat(t)
	assert.Equal(t, lines(
		"+-+-+-+",
		"|S    |",
		"+ + + +",
		"| | |G|",
		"+-+-+-+",
	), render.String(s), "idle")

	// first pass cuts the two dead-end verticals
	s.BeginSolve()
	var buf bytes.Buffer
	require.NoError(t, render.ASCII(&buf, s, render.WithPruned(true)))
	assert.Equal(t, lines(
		"+-+-+-+",
		"|S****|",
		"+x+x+*+",
		"|x|x|G|",
		"+-+-+-+",
	), buf.String(), "after first pass")

	_, err := s.Step()
	require.NoError(t, err)
	require.True(t, s.Converged())
	assert.Equal(t, lines(
		"+-+-+-+",
		"|S****|",
		"+ + +*+",
		"| | |G|",
		"+-+-+-+",
	), render.String(s), "converged")

	buf.Reset()
	require.NoError(t, render.ASCII(&buf, s, render.WithPath(false)))
	assert.Equal(t, lines(
		"+-+-+-+",
		"|S    |",
		"+ + + +",
		"| | |G|",
		"+-+-+-+",
	), buf.String(), "path hidden")
}

func TestASCII_Corridor(t *testing.T) {
	s, err := maze.Construct(1, 1)
	require.NoError(t, err)
	assert.Equal(t, lines("+-+", "|S|", "+-+"), render.String(s))

	s, err = maze.Construct(1, 3)
	require.NoError(t, err)
	s.BeginSolve()
	assert.Equal(t, lines("+-+", "|S|", "+*+", "|*|", "+*+", "|G|", "+-+"), render.String(s))
}

// TestASCII_Shape checks the canvas dimensions and that the border is closed.
func TestASCII_Shape(t *testing.T) {
	s, err := maze.Construct(13, 6)
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSuffix(render.String(s), "\n"), "\n")
	require.Len(t, rows, 2*6+1)
	for i, r := range rows {
		require.Len(t, r, 2*13+1, "row %d", i)
		if i%2 == 1 {
			assert.Equal(t, byte('|'), r[0])
			assert.Equal(t, byte('|'), r[len(r)-1])
		}
	}
	assert.Equal(t, "+"+strings.Repeat("-+", 13), rows[0])
	assert.Equal(t, rows[0], rows[len(rows)-1])
	// walls plus tree edges account for every passage slot
	open := 0
	for i, r := range rows {
		for j := range r {
			if (i+j)%2 == 1 && r[j] == ' ' && i > 0 && i < len(rows)-1 && j > 0 && j < len(r)-1 {
				open++
			}
		}
	}
	assert.Equal(t, len(s.TreeEdges()), open)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestASCII_WriteError(t *testing.T) {
	s := flat(t)
	err := render.ASCII(failWriter{}, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
