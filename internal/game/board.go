package game

import "fmt"

// Board holds piece occupancy over a fixed layout.
type Board struct {
	Layout
	cells [][]*Piece
}

// NewBoard places pieces on layout. A piece on a wall, off the grid, with
// no valid owner, or on an already occupied cell is rejected.
func NewBoard(layout Layout, pieces []Piece) (*Board, error) {
	c := make([][]*Piece, layout.Size)
	for i := range c {
		c[i] = make([]*Piece, layout.Size)
	}
	b := &Board{Layout: layout, cells: c}

	for _, p := range pieces {
		switch {
		case !layout.InBounds(p.Pos):
			return nil, fmt.Errorf("%w: piece at %v", ErrOutOfBounds, p.Pos)
		case layout.IsWall(p.Pos):
			return nil, fmt.Errorf("%w: piece on wall %v", ErrInvalidConfig, p.Pos)
		case !p.Owner.Valid():
			return nil, fmt.Errorf("%w: piece at %v has no owner", ErrInvalidConfig, p.Pos)
		case b.cells[p.Pos.Row][p.Pos.Col] != nil:
			return nil, fmt.Errorf("%w: two pieces at %v", ErrInvalidConfig, p.Pos)
		}
		pc := p
		b.cells[p.Pos.Row][p.Pos.Col] = &pc
	}
	return b, nil
}

func (b *Board) at(p Pos) *Piece {
	if !b.InBounds(p) {
		return nil
	}
	return b.cells[p.Row][p.Col]
}

// PieceAt returns a copy of the piece on p.
func (b *Board) PieceAt(p Pos) (Piece, bool) {
	pc := b.at(p)
	if pc == nil {
		return Piece{}, false
	}
	return *pc, true
}

// Pieces returns every piece in row-major order.
func (b *Board) Pieces() []Piece {
	var out []Piece
	for _, row := range b.cells {
		for _, pc := range row {
			if pc != nil {
				out = append(out, *pc)
			}
		}
	}
	return out
}

func (b *Board) Count(owner Player) int {
	n := 0
	for _, row := range b.cells {
		for _, pc := range row {
			if pc != nil && pc.Owner == owner {
				n++
			}
		}
	}
	return n
}

// relocate moves the piece on from to to. Whatever stood on to is dropped
// and returned.
func (b *Board) relocate(from, to Pos) (captured *Piece) {
	pc := b.cells[from.Row][from.Col]
	captured = b.cells[to.Row][to.Col]
	b.cells[from.Row][from.Col] = nil
	pc.Pos = to
	b.cells[to.Row][to.Col] = pc
	return captured
}
