package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wall-duel/internal/game"
)

func fixture(t *testing.T) *game.Game {
	t.Helper()
	l, err := game.NewLayout(5, []game.Pos{{Row: 2, Col: 2}}, []game.Pos{{Row: 1, Col: 4}})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	g, err := game.NewGameFromLayout(l, []game.Piece{
		{Owner: game.P1, Pos: game.Pos{Row: 0, Col: 0}},
		{Owner: game.P2, Pos: game.Pos{Row: 1, Col: 1}},
		{Owner: game.P2, Pos: game.Pos{Row: 4, Col: 4}},
	})
	if err != nil {
		t.Fatalf("game: %v", err)
	}
	return g
}

func TestGrid(t *testing.T) {
	g := fixture(t)
	if err := g.SelectAt(0, 0); err != nil {
		t.Fatalf("select: %v", err)
	}

	want := []string{
		"O**..",
		"*!..:",
		"*.#..",
		".....",
		"....X",
	}
	if diff := cmp.Diff(want, Grid(g.Export())); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawBoard(t *testing.T) {
	g := fixture(t)
	if err := g.SelectAt(0, 0); err != nil {
		t.Fatalf("select: %v", err)
	}

	var buf bytes.Buffer
	if err := NewContext(&buf, 80).DrawBoard(g); err != nil {
		t.Fatalf("draw: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, " 0 [O] *  * ") {
		t.Fatalf("selected piece not bracketed:\n%s", out)
	}
	if !strings.HasSuffix(out, "current player: red (circle)\n") {
		t.Fatalf("missing status line:\n%s", out)
	}
}

func TestStatusAfterMove(t *testing.T) {
	g := fixture(t)
	if _, err := g.Click(0, 0); err != nil {
		t.Fatalf("select: %v", err)
	}
	out, err := g.Click(1, 1)
	if err != nil || out.Action != game.ClickMoved {
		t.Fatalf("capture: %+v %v", out, err)
	}
	if got := Status(g.Export()); got != "current player: blue (square)" {
		t.Fatalf("status = %q", got)
	}
}

func TestStatusGameOver(t *testing.T) {
	s := game.Snapshot{State: game.GameOver, Winner: game.P2, CurrentPlayer: game.P1}
	if got := Status(s); got != "blue (square) wins!" {
		t.Fatalf("status = %q", got)
	}
}

func TestCellAt(t *testing.T) {
	ctx := NewContext(nil, 80)
	tests := []struct {
		px, py int
		want   game.Pos
		ok     bool
	}{
		{0, 0, game.Pos{Row: 0, Col: 0}, true},
		{79, 79, game.Pos{Row: 0, Col: 0}, true},
		{80, 0, game.Pos{Row: 0, Col: 1}, true},
		{799, 160, game.Pos{Row: 2, Col: 9}, true},
		{800, 0, game.Pos{}, false},
		{-1, 10, game.Pos{}, false},
	}
	for _, tt := range tests {
		got, ok := ctx.CellAt(tt.px, tt.py, 10)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("CellAt(%d,%d) = %v %v, want %v %v", tt.px, tt.py, got, ok, tt.want, tt.ok)
		}
	}
}
