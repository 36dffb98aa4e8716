package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongarena/game"
)

const (
	headerRows = 1 // Score line
	wallRows   = 2 // Top and bottom wall

	MinCols = 20
	MinRows = headerRows + wallRows + 5
)

// Layout maps arena coordinates onto a grid of terminal cells. Row 0 holds the
// scores, the arena sits between the two wall rows below it.
type Layout struct {
	Cols, Rows int // Arena cells, walls excluded
	Top        int // Screen row of the first arena cell
	ScaleX     float64
	ScaleY     float64
}

// NewLayout fits an arena of width x height into a cols x rows screen.
func NewLayout(width, height float64, cols, rows int) (Layout, error) {
	if cols < MinCols || rows < MinRows {
		return Layout{}, fmt.Errorf("terminal %dx%d is smaller than %dx%d", cols, rows, MinCols, MinRows)
	}
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("arena %vx%v has no area", width, height)
	}
	arenaRows := rows - headerRows - wallRows
	return Layout{
		Cols:   cols,
		Rows:   arenaRows,
		Top:    headerRows + 1,
		ScaleX: float64(cols) / width,
		ScaleY: float64(arenaRows) / height,
	}, nil
}

// Col returns the screen column covering arena x.
func (l Layout) Col(x float64) int {
	return clampInt(int(x*l.ScaleX), 0, l.Cols-1)
}

// Row returns the screen row covering arena y.
func (l Layout) Row(y float64) int {
	return l.Top + clampInt(int(y*l.ScaleY), 0, l.Rows-1)
}

// Span returns the inclusive cell range covered by rect. Every rect covers at least one cell.
func (l Layout) Span(r game.Rect) (col0, row0, col1, row1 int) {
	const inset = 1e-9
	col0, row0 = l.Col(r.X), l.Row(r.Y)
	col1, row1 = l.Col(r.Right()-inset), l.Row(r.Bottom()-inset)
	if col1 < col0 {
		col1 = col0
	}
	if row1 < row0 {
		row1 = row0
	}
	return col0, row0, col1, row1
}

// WallRows returns the screen rows of the top and bottom wall.
func (l Layout) WallRows() (top, bottom int) {
	return l.Top - 1, l.Top + l.Rows
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Styles used for each element of the arena.
type Styles struct {
	Wall   tcell.Style
	Border tcell.Style
	Net    tcell.Style
	Paddle tcell.Style
	Ball   tcell.Style
	Text   tcell.Style
}

// DefaultStyles returns the colors used by the terminal renderer.
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Wall:   base.Foreground(tcell.ColorGray),
		Border: base.Foreground(tcell.ColorWhite),
		Net:    base.Foreground(tcell.ColorDarkGray),
		Paddle: base.Foreground(tcell.ColorGreen),
		Ball:   base.Foreground(tcell.ColorYellow).Bold(true),
		Text:   base.Foreground(tcell.ColorWhite).Bold(true),
	}
}

// canvas is a grid of cells a snapshot can be drawn onto.
type canvas interface {
	set(col, row int, r rune, style tcell.Style)
}

const (
	runeWall   = '─'
	runeBorder = '│'
	runeNet    = '┊'
	runePaddle = '█'
	runeBall   = '●'
)

// drawSnapshot draws the whole frame: scores, walls, goal borders, net, paddles and ball.
func drawSnapshot(c canvas, l Layout, snap game.Snapshot, styles Styles) {
	drawText(c, l.Cols, 0, ScoreLine(snap), styles.Text)

	top, bottom := l.WallRows()
	for col := 0; col < l.Cols; col++ {
		c.set(col, top, runeWall, styles.Wall)
		c.set(col, bottom, runeWall, styles.Wall)
	}

	netCol := l.Col(snap.Width / 2)
	for row := l.Top; row < l.Top+l.Rows; row += 2 {
		c.set(netCol, row, runeNet, styles.Net)
	}

	drawGoalBorders(c, l, 0, snap.Height, snap.LhsGoalHeight, styles.Border)
	drawGoalBorders(c, l, l.Cols-1, snap.Height, snap.RhsGoalHeight, styles.Border)

	fillRect(c, l, snap.LhsPaddle, runePaddle, styles.Paddle)
	fillRect(c, l, snap.RhsPaddle, runePaddle, styles.Paddle)

	ballCol := l.Col(snap.Ball.CenterX())
	ballRow := l.Row(snap.Ball.CenterY())
	c.set(ballCol, ballRow, runeBall, styles.Ball)
}

// drawGoalBorders draws the wall stubs above and below a goal mouth.
func drawGoalBorders(c canvas, l Layout, col int, height, goalHeight float64, style tcell.Style) {
	border := (height - goalHeight) / 2
	if border <= 0 {
		return
	}
	lastAbove := l.Row(border - 1e-9)
	firstBelow := l.Row(height - border)
	for row := l.Top; row < l.Top+l.Rows; row++ {
		if row <= lastAbove || row >= firstBelow {
			c.set(col, row, runeBorder, style)
		}
	}
}

func fillRect(c canvas, l Layout, r game.Rect, ch rune, style tcell.Style) {
	col0, row0, col1, row1 := l.Span(r)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			c.set(col, row, ch, style)
		}
	}
}

// drawText centers text on row, clipped to cols.
func drawText(c canvas, cols, row int, text string, style tcell.Style) {
	runes := []rune(text)
	start := (cols - len(runes)) / 2
	if start < 0 {
		start = 0
	}
	for i, r := range runes {
		if start+i >= cols {
			break
		}
		c.set(start+i, row, r, style)
	}
}

// ScoreLine formats the header shown above the arena.
func ScoreLine(snap game.Snapshot) string {
	line := fmt.Sprintf("PLAYER %2d : %-2d AI", snap.LhsScore, snap.RhsScore)
	if snap.BallSimOverridden {
		line += "  [ball held]"
	}
	return line
}
