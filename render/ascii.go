package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongarena/game"
)

// runeGrid is a canvas that keeps only the characters.
type runeGrid [][]rune

func newRuneGrid(cols, rows int) runeGrid {
	grid := make(runeGrid, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	return grid
}

func (g runeGrid) set(col, row int, r rune, _ tcell.Style) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return
	}
	g[row][col] = r
}

// RenderToASCII draws a snapshot as plain text of cols x rows characters,
// one line per row. It is used when no terminal screen is available and for
// the final frame printed after the match.
func RenderToASCII(snap game.Snapshot, cols, rows int) (string, error) {
	layout, err := NewLayout(snap.Width, snap.Height, cols, rows)
	if err != nil {
		return "", err
	}
	grid := newRuneGrid(cols, rows)
	drawSnapshot(grid, layout, snap, Styles{})

	var ascii strings.Builder
	for _, line := range grid {
		ascii.WriteString(string(line))
		ascii.WriteString("\n")
	}
	return ascii.String(), nil
}
