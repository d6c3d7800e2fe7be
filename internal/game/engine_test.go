package game

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustBoard(t *testing.T, size int, walls, dark []Pos, pieces []Piece) *Board {
	t.Helper()
	l, err := NewLayout(size, walls, dark)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	b, err := NewBoard(l, pieces)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	return b
}

func moveSet(moves []Move) map[Pos]bool {
	out := make(map[Pos]bool, len(moves))
	for _, m := range moves {
		out[m.To] = m.Capture
	}
	return out
}

func TestLegalMovesCornerOnOpenBoard(t *testing.T) {
	p := Piece{Owner: P1, Pos: Pos{0, 0}}
	b := mustBoard(t, 10, nil, nil, []Piece{p})

	want := []Move{
		{To: Pos{0, 1}},
		{To: Pos{0, 2}},
		{To: Pos{1, 0}},
		{To: Pos{1, 1}},
		{To: Pos{2, 0}},
	}
	if diff := cmp.Diff(want, LegalMoves(b, p)); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}

	got := moveSet(LegalMoves(b, p))
	for _, excluded := range []Pos{{2, 2}, {3, 3}, {1, 2}, {2, 1}} {
		if _, ok := got[excluded]; ok {
			t.Fatalf("%v is beyond Manhattan range 2", excluded)
		}
	}
}

func TestLegalMovesCenterReach(t *testing.T) {
	p := Piece{Owner: P1, Pos: Pos{4, 4}}
	b := mustBoard(t, 10, nil, nil, []Piece{p})

	// the Manhattan diamond of radius 2 minus the origin
	if got := len(LegalMoves(b, p)); got != 12 {
		t.Fatalf("expected 12 moves, got %d", got)
	}
}

func TestLegalMovesDarkOrigin(t *testing.T) {
	p := Piece{Owner: P1, Pos: Pos{1, 1}}
	b := mustBoard(t, 10, nil, []Pos{{1, 1}}, []Piece{p})

	want := []Move{
		{To: Pos{0, 1}},
		{To: Pos{1, 0}},
		{To: Pos{1, 2}},
		{To: Pos{2, 1}},
	}
	if diff := cmp.Diff(want, LegalMoves(b, p)); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMovesDarkDestination(t *testing.T) {
	p := Piece{Owner: P1, Pos: Pos{4, 4}}
	b := mustBoard(t, 10, nil, []Pos{{4, 6}, {4, 5}}, []Piece{p})

	got := moveSet(LegalMoves(b, p))
	if _, ok := got[Pos{4, 5}]; !ok {
		t.Fatal("single step onto a dark cell should be legal")
	}
	if _, ok := got[Pos{4, 6}]; ok {
		t.Fatal("two steps onto a dark cell should be illegal")
	}
	if _, ok := got[Pos{6, 4}]; !ok {
		t.Fatal("two steps between normal cells should be legal")
	}
}

func TestLegalMovesWalls(t *testing.T) {
	p := Piece{Owner: P1, Pos: Pos{4, 4}}
	b := mustBoard(t, 10, []Pos{{4, 5}, {3, 4}}, nil, []Piece{p})

	got := moveSet(LegalMoves(b, p))
	for _, wall := range []Pos{{4, 5}, {3, 4}} {
		if _, ok := got[wall]; ok {
			t.Fatalf("wall %v offered as destination", wall)
		}
	}
	// no line of sight: a piece may hop a wall within range
	if _, ok := got[Pos{4, 6}]; !ok {
		t.Fatal("expected hop over wall to (4,6)")
	}
}

func TestLegalMovesCaptures(t *testing.T) {
	p := Piece{Owner: P1, Pos: Pos{4, 4}}
	pieces := []Piece{
		p,
		{Owner: P2, Pos: Pos{5, 5}}, // diagonal contact
		{Owner: P2, Pos: Pos{5, 4}}, // orthogonal contact
		{Owner: P2, Pos: Pos{4, 2}}, // two steps away
		{Owner: P1, Pos: Pos{3, 3}}, // own piece
	}
	b := mustBoard(t, 10, nil, nil, pieces)

	got := moveSet(LegalMoves(b, p))
	tests := []struct {
		to      Pos
		legal   bool
		capture bool
	}{
		{Pos{5, 5}, true, true},
		{Pos{5, 4}, false, false},
		{Pos{4, 2}, false, false},
		{Pos{3, 3}, false, false},
		{Pos{6, 4}, true, false},
		{Pos{4, 3}, true, false},
	}
	for _, tt := range tests {
		capture, ok := got[tt.to]
		if ok != tt.legal {
			t.Fatalf("%v: legal = %v, want %v", tt.to, ok, tt.legal)
		}
		if ok && capture != tt.capture {
			t.Fatalf("%v: capture = %v, want %v", tt.to, capture, tt.capture)
		}
	}
}

func TestLegalMovesNoCaptureTouchingDarkCell(t *testing.T) {
	p := Piece{Owner: P1, Pos: Pos{4, 4}}
	b := mustBoard(t, 10, nil, []Pos{{5, 5}}, []Piece{p, {Owner: P2, Pos: Pos{5, 5}}})

	if _, ok := moveSet(LegalMoves(b, p))[Pos{5, 5}]; ok {
		t.Fatal("diagonal capture onto a dark cell should be illegal")
	}
}

// randomBoard scatters pieces of both owners over a generated layout.
func randomBoard(t *testing.T, seed int64) *Board {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	l, err := GenerateLayout(10, DefaultDarkCells, rng)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	var pieces []Piece
	for row := 0; row < l.Size; row++ {
		for col := 0; col < l.Size; col++ {
			p := Pos{row, col}
			if l.IsWall(p) || rng.Intn(3) != 0 {
				continue
			}
			owner := P1
			if rng.Intn(2) == 0 {
				owner = P2
			}
			pieces = append(pieces, Piece{Owner: owner, Pos: p})
		}
	}
	b, err := NewBoard(l, pieces)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	return b
}

func TestLegalMovesProperties(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		b := randomBoard(t, seed)
		for _, p := range b.Pieces() {
			for _, m := range LegalMoves(b, p) {
				dr, dc := m.To.Row-p.Pos.Row, m.To.Col-p.Pos.Col
				dist := abs(dr) + abs(dc)

				if !b.InBounds(m.To) {
					t.Fatalf("seed %d: %v -> %v out of bounds", seed, p.Pos, m.To)
				}
				if b.IsWall(m.To) {
					t.Fatalf("seed %d: %v -> %v onto wall", seed, p.Pos, m.To)
				}
				if dist > 2 {
					t.Fatalf("seed %d: %v -> %v distance %d", seed, p.Pos, m.To, dist)
				}
				if (b.IsDark(p.Pos) || b.IsDark(m.To)) && dist > 1 {
					t.Fatalf("seed %d: %v -> %v distance %d touches dark cell", seed, p.Pos, m.To, dist)
				}

				target, occupied := b.PieceAt(m.To)
				if occupied && target.Owner == p.Owner {
					t.Fatalf("seed %d: %v -> %v onto own piece", seed, p.Pos, m.To)
				}
				if m.Capture != occupied {
					t.Fatalf("seed %d: %v -> %v capture=%v occupied=%v", seed, p.Pos, m.To, m.Capture, occupied)
				}
				if m.Capture && !(abs(dr) == 1 && abs(dc) == 1) {
					t.Fatalf("seed %d: %v -> %v capture is not a diagonal step", seed, p.Pos, m.To)
				}
			}
		}
	}
}

func TestLegalMovesDoesNotMutateBoard(t *testing.T) {
	b := randomBoard(t, 7)
	before := b.Pieces()
	for _, p := range before {
		LegalMoves(b, p)
	}
	if diff := cmp.Diff(before, b.Pieces()); diff != "" {
		t.Fatalf("board changed:\n%s", diff)
	}
}
