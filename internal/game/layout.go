package game

import (
	"fmt"
	"math/rand"
	"sort"
)

// Layout is the static part of a board: walls and dark cells. It never
// changes after generation.
type Layout struct {
	Size  int
	walls map[Pos]struct{}
	dark  map[Pos]struct{}
}

// GenerateLayout builds the wall with its single gap and draws the dark
// cells from rng. rng is the only source of randomness.
func GenerateLayout(size, darkCells int, rng *rand.Rand) (Layout, error) {
	if err := validateSize(size, darkCells); err != nil {
		return Layout{}, err
	}

	l := Layout{
		Size:  size,
		walls: make(map[Pos]struct{}),
		dark:  make(map[Pos]struct{}, darkCells),
	}

	mid := size / 2
	for row := 2; row <= size-3; row++ {
		for col := mid - 1; col <= mid+1; col++ {
			l.walls[Pos{row, col}] = struct{}{}
		}
	}
	// gap
	for col := mid - 1; col <= mid+1; col++ {
		delete(l.walls, Pos{mid, col})
	}

	// Home rows 0 and size-1 never turn dark.
	for len(l.dark) < darkCells {
		row := rng.Intn(size-2) + 1
		col := rng.Intn(size)
		l.dark[Pos{row, col}] = struct{}{}
	}

	return l, nil
}

// NewLayout builds a layout from explicit cell lists, for fixed scenarios.
func NewLayout(size int, walls, dark []Pos) (Layout, error) {
	if size < 1 || size > MaxGridSize {
		return Layout{}, fmt.Errorf("%w: grid size %d", ErrInvalidConfig, size)
	}
	l := Layout{
		Size:  size,
		walls: make(map[Pos]struct{}, len(walls)),
		dark:  make(map[Pos]struct{}, len(dark)),
	}
	for _, p := range walls {
		if !l.InBounds(p) {
			return Layout{}, fmt.Errorf("%w: wall %v", ErrOutOfBounds, p)
		}
		l.walls[p] = struct{}{}
	}
	for _, p := range dark {
		if !l.InBounds(p) {
			return Layout{}, fmt.Errorf("%w: dark cell %v", ErrOutOfBounds, p)
		}
		l.dark[p] = struct{}{}
	}
	return l, nil
}

func validateSize(size, darkCells int) error {
	if size < MinGridSize {
		return fmt.Errorf("%w: grid size %d is below minimum %d", ErrInvalidConfig, size, MinGridSize)
	}
	if size > MaxGridSize {
		return fmt.Errorf("%w: grid size %d is above maximum %d", ErrInvalidConfig, size, MaxGridSize)
	}
	if darkCells < 0 {
		return fmt.Errorf("%w: negative dark cell count %d", ErrInvalidConfig, darkCells)
	}
	if avail := (size - 2) * size; darkCells > avail {
		return fmt.Errorf("%w: %d dark cells do not fit in %d candidate cells", ErrInvalidConfig, darkCells, avail)
	}
	return nil
}

func (l Layout) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < l.Size && p.Col >= 0 && p.Col < l.Size
}

func (l Layout) IsWall(p Pos) bool {
	_, ok := l.walls[p]
	return ok
}

func (l Layout) IsDark(p Pos) bool {
	_, ok := l.dark[p]
	return ok
}

// Walls returns the wall cells in row-major order.
func (l Layout) Walls() []Pos { return sortedCells(l.walls) }

// DarkCells returns the dark cells in row-major order.
func (l Layout) DarkCells() []Pos { return sortedCells(l.dark) }

func sortedCells(set map[Pos]struct{}) []Pos {
	out := make([]Pos, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// InitialPieces places one P1 piece per column on row 0 and one P2 piece per
// column on the last row.
func InitialPieces(size int) []Piece {
	pieces := make([]Piece, 0, 2*size)
	for col := 0; col < size; col++ {
		pieces = append(pieces, Piece{Owner: P1, Pos: Pos{0, col}})
	}
	for col := 0; col < size; col++ {
		pieces = append(pieces, Piece{Owner: P2, Pos: Pos{size - 1, col}})
	}
	return pieces
}
