// Package render draws a game for a terminal and maps pointer coordinates
// back to cells. It only reads game state.
package render

import (
	"fmt"
	"io"
	"strings"

	"wall-duel/internal/game"
)

// View is the read-only slice of a game the renderer needs.
type View interface {
	Export() game.Snapshot
}

var colors = map[game.Player]string{
	game.P1: "red",
	game.P2: "blue",
}

var pieceGlyphs = map[game.Shape]rune{
	game.Circle: 'O',
	game.Square: 'X',
}

const (
	glyphPlain   = '.'
	glyphDark    = ':'
	glyphWall    = '#'
	glyphReach   = '*'
	glyphCapture = '!'
)

// Context carries everything drawing needs. Nothing in the engine touches it.
type Context struct {
	Out      io.Writer
	CellSize int
}

func NewContext(out io.Writer, cellSize int) *Context {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Context{Out: out, CellSize: cellSize}
}

// CellAt maps a pointer position to the cell under it. ok is false outside
// a gridSize x gridSize board.
func (c *Context) CellAt(px, py, gridSize int) (game.Pos, bool) {
	if px < 0 || py < 0 {
		return game.Pos{}, false
	}
	p := game.Pos{Row: py / c.CellSize, Col: px / c.CellSize}
	if p.Row >= gridSize || p.Col >= gridSize {
		return game.Pos{}, false
	}
	return p, true
}

// Grid renders the board as one string per row.
func Grid(s game.Snapshot) []string {
	cells := make([][]rune, s.Size)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(string(glyphPlain), s.Size))
	}
	for _, p := range s.DarkCells {
		cells[p.Row][p.Col] = glyphDark
	}
	for _, p := range s.Walls {
		cells[p.Row][p.Col] = glyphWall
	}
	for _, pc := range s.Pieces {
		cells[pc.Pos.Row][pc.Pos.Col] = pieceGlyphs[pc.Shape()]
	}
	for _, m := range s.Destinations {
		if m.Capture {
			cells[m.To.Row][m.To.Col] = glyphCapture
		} else {
			cells[m.To.Row][m.To.Col] = glyphReach
		}
	}

	out := make([]string, s.Size)
	for r, row := range cells {
		out[r] = string(row)
	}
	return out
}

// DrawBoard writes the board with row and column indices, the selected
// piece bracketed, then the status line.
func (c *Context) DrawBoard(v View) error {
	s := v.Export()
	var b strings.Builder

	b.WriteString("   ")
	for col := 0; col < s.Size; col++ {
		fmt.Fprintf(&b, "%2d ", col)
	}
	b.WriteByte('\n')

	for r, row := range Grid(s) {
		fmt.Fprintf(&b, "%2d ", r)
		for col, ch := range []rune(row) {
			if s.Selected != nil && *s.Selected == (game.Pos{Row: r, Col: col}) {
				fmt.Fprintf(&b, "[%c]", ch)
				continue
			}
			fmt.Fprintf(&b, " %c ", ch)
		}
		b.WriteByte('\n')
	}
	b.WriteString(Status(s))
	b.WriteByte('\n')

	_, err := io.WriteString(c.Out, b.String())
	return err
}

// Status is the line shown under the board.
func Status(s game.Snapshot) string {
	if s.State == game.GameOver {
		return fmt.Sprintf("%s wins!", describe(s.Winner))
	}
	return fmt.Sprintf("current player: %s", describe(s.CurrentPlayer))
}

func describe(p game.Player) string {
	return fmt.Sprintf("%s (%s)", colors[p], p.Shape())
}
