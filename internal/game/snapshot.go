package game

// Snapshot is everything a renderer needs to draw the game.
type Snapshot struct {
	Size          int          `json:"size"`
	Walls         []Pos        `json:"walls"`
	DarkCells     []Pos        `json:"dark_cells"`
	Pieces        []Piece      `json:"pieces"`
	CurrentPlayer Player       `json:"current_player"`
	State         State        `json:"state"`
	Selected      *Pos         `json:"selected,omitempty"`
	Destinations  []Move       `json:"destinations"`
	Winner        Player       `json:"winner,omitempty"`
	History       []MoveResult `json:"history"`
}

func (g *Game) Export() Snapshot {
	s := Snapshot{
		Size:          g.board.Size,
		Walls:         g.board.Walls(),
		DarkCells:     g.board.DarkCells(),
		Pieces:        g.board.Pieces(),
		CurrentPlayer: g.current,
		State:         g.state,
		Destinations:  g.LegalMoves(),
		Winner:        g.winner,
		History:       g.History(),
	}
	if s.Pieces == nil {
		s.Pieces = []Piece{}
	}
	if s.Destinations == nil {
		s.Destinations = []Move{}
	}
	if s.History == nil {
		s.History = []MoveResult{}
	}
	if g.selected != nil {
		p := g.selected.Pos
		s.Selected = &p
	}
	return s
}
