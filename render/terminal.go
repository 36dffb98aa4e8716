package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongarena/game"
)

// Terminal draws snapshots onto a tcell screen.
type Terminal struct {
	screen tcell.Screen
	styles Styles
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, styles: DefaultStyles()}
}

func (t *Terminal) set(col, row int, r rune, style tcell.Style) {
	t.screen.SetContent(col, row, r, nil, style)
}

// Draw renders one frame. A screen too small for the arena shows a hint instead.
func (t *Terminal) Draw(snap game.Snapshot) {
	t.screen.Clear()
	cols, rows := t.screen.Size()

	layout, err := NewLayout(snap.Width, snap.Height, cols, rows)
	if err != nil {
		drawText(t, cols, rows/2, "enlarge the terminal", t.styles.Text)
		t.screen.Show()
		return
	}
	drawSnapshot(t, layout, snap, t.styles)
	t.screen.Show()
}

// Banner draws text centered over the current frame.
func (t *Terminal) Banner(text string) {
	cols, rows := t.screen.Size()
	drawText(t, cols, rows/2, " "+text+" ", t.styles.Text.Reverse(true))
	t.screen.Show()
}
