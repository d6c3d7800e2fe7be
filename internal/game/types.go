package game

import "fmt"

const (
	DefaultGridSize  = 10
	DefaultDarkCells = 10
	// MinGridSize is the smallest board where the gap row falls inside the
	// wall rows and the two home rows stay free of walls.
	MinGridSize = 5
	// MaxGridSize caps the board a caller can ask for.
	MaxGridSize = 100
	// MaxReach bounds both the delta enumeration and the Manhattan range.
	MaxReach = 2
)

// Pos is a 0-indexed grid coordinate.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

type Player int

const (
	NoPlayer Player = iota
	P1
	P2
)

// Other returns the opponent. NoPlayer has no opponent.
func (p Player) Other() Player {
	switch p {
	case P1:
		return P2
	case P2:
		return P1
	}
	return NoPlayer
}

func (p Player) Valid() bool { return p == P1 || p == P2 }

func (p Player) String() string {
	switch p {
	case P1:
		return "P1"
	case P2:
		return "P2"
	}
	return "none"
}

type Shape string

const (
	Circle Shape = "circle"
	Square Shape = "square"
)

var playerShapes = map[Player]Shape{
	P1: Circle,
	P2: Square,
}

// Shape is cosmetic only; the rules never look at it.
func (p Player) Shape() Shape { return playerShapes[p] }

type Piece struct {
	Owner Player `json:"owner"`
	Pos   Pos    `json:"pos"`
}

func (p Piece) Shape() Shape { return p.Owner.Shape() }

// Move is one legal destination for a piece.
type Move struct {
	To      Pos  `json:"to"`
	Capture bool `json:"capture"`
}

type MoveResult struct {
	Player   Player `json:"player"`
	From     Pos    `json:"from"`
	To       Pos    `json:"to"`
	Captured *Piece `json:"captured,omitempty"`
}

type GameOverEvent struct {
	Winner Player `json:"winner"`
}

type State int

const (
	AwaitingSelection State = iota
	PieceSelected
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting_selection"
	case PieceSelected:
		return "piece_selected"
	case GameOver:
		return "game_over"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	for _, st := range []State{AwaitingSelection, PieceSelected, GameOver} {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
