package game

import (
	"fmt"
	"math/rand"
)

// Options sizes a game.
type Options struct {
	Size      int `json:"grid_size"`
	DarkCells int `json:"dark_cells"`
}

func DefaultOptions() Options {
	return Options{Size: DefaultGridSize, DarkCells: DefaultDarkCells}
}

func (o Options) Validate() error { return validateSize(o.Size, o.DarkCells) }

// Game is the turn controller. It owns the board exclusively; LegalMoves
// only reads it. A Game is not safe for concurrent use.
type Game struct {
	opts    Options
	random  *rand.Rand
	board   *Board
	current Player
	state   State

	selected *Piece
	legal    []Move

	winner  Player
	history []MoveResult
}

// NewGame starts a game on a size x size grid with the default number of
// dark cells drawn from seed.
func NewGame(size int, seed int64) (*Game, error) {
	return NewGameWithOptions(Options{Size: size, DarkCells: DefaultDarkCells}, rand.New(rand.NewSource(seed)))
}

func NewGameWithOptions(opts Options, rng *rand.Rand) (*Game, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	layout, err := GenerateLayout(opts.Size, opts.DarkCells, rng)
	if err != nil {
		return nil, err
	}
	g, err := NewGameFromLayout(layout, InitialPieces(opts.Size))
	if err != nil {
		return nil, err
	}
	g.opts = opts
	g.random = rng
	return g, nil
}

// NewGameFromLayout starts a game from a fixed position with P1 to move.
// Games built this way cannot Reset.
func NewGameFromLayout(layout Layout, pieces []Piece) (*Game, error) {
	b, err := NewBoard(layout, pieces)
	if err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}
	return &Game{
		opts:    Options{Size: layout.Size, DarkCells: len(layout.dark)},
		board:   b,
		current: P1,
		state:   AwaitingSelection,
	}, nil
}

// Reset returns a fresh game with the same options. It continues the same
// random stream, so a seeded game replays the same sequence of layouts.
func (g *Game) Reset() (*Game, error) {
	if g.random == nil {
		return nil, fmt.Errorf("%w: fixed-layout game cannot reset", ErrInvalidConfig)
	}
	return NewGameWithOptions(g.opts, g.random)
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Options() Options { return g.opts }

func (g *Game) CurrentPlayer() Player { return g.current }

func (g *Game) State() State { return g.state }

// Winner is NoPlayer until the game is over.
func (g *Game) Winner() Player { return g.winner }

func (g *Game) PieceCount(p Player) int { return g.board.Count(p) }

// History lists the moves applied so far, oldest first.
func (g *Game) History() []MoveResult {
	return append([]MoveResult(nil), g.history...)
}

// Selected returns the selected piece, if any.
func (g *Game) Selected() (Piece, bool) {
	if g.selected == nil {
		return Piece{}, false
	}
	return *g.selected, true
}

func (g *Game) pos(row, col int) (Pos, error) {
	p := Pos{row, col}
	if !g.board.InBounds(p) {
		return p, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, p, g.board.Size, g.board.Size)
	}
	return p, nil
}

func (g *Game) IsWall(row, col int) (bool, error) {
	p, err := g.pos(row, col)
	if err != nil {
		return false, err
	}
	return g.board.IsWall(p), nil
}

func (g *Game) IsDarkCell(row, col int) (bool, error) {
	p, err := g.pos(row, col)
	if err != nil {
		return false, err
	}
	return g.board.IsDark(p), nil
}

func (g *Game) PieceAt(row, col int) (Piece, bool, error) {
	p, err := g.pos(row, col)
	if err != nil {
		return Piece{}, false, err
	}
	pc, ok := g.board.PieceAt(p)
	return pc, ok, nil
}

// SelectAt selects the current player's piece on (row, col) and caches its
// legal moves. Any other cell is rejected and leaves the selection as it was.
func (g *Game) SelectAt(row, col int) error {
	p, err := g.pos(row, col)
	if err != nil {
		return err
	}
	if g.state == GameOver {
		return ErrGameOver
	}
	pc := g.board.at(p)
	if pc == nil {
		return fmt.Errorf("%w: no piece at %v", ErrInvalidSelection, p)
	}
	if pc.Owner != g.current {
		return fmt.Errorf("%w: piece at %v belongs to %v", ErrInvalidSelection, p, pc.Owner)
	}
	g.selected = pc
	g.legal = LegalMoves(g.board, *pc)
	g.state = PieceSelected
	return nil
}

// Deselect drops the current selection.
func (g *Game) Deselect() {
	if g.state != PieceSelected {
		return
	}
	g.clearSelection()
	g.state = AwaitingSelection
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.legal = nil
}

// LegalMoves returns the cached moves of the selected piece.
func (g *Game) LegalMoves() []Move {
	return append([]Move(nil), g.legal...)
}

// LegalDestinations returns the cells the selected piece may move to.
func (g *Game) LegalDestinations() []Pos {
	out := make([]Pos, 0, len(g.legal))
	for _, m := range g.legal {
		out = append(out, m.To)
	}
	return out
}

func (g *Game) cachedMove(to Pos) (Move, bool) {
	for _, m := range g.legal {
		if m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

// MoveSelectedTo moves the selected piece to (row, col). On failure nothing
// changes. A non-nil event means the move ended the game.
func (g *Game) MoveSelectedTo(row, col int) (MoveResult, *GameOverEvent, error) {
	p, err := g.pos(row, col)
	if err != nil {
		return MoveResult{}, nil, err
	}
	if g.state == GameOver {
		return MoveResult{}, nil, ErrGameOver
	}
	res, err := g.applyMove(p)
	if err != nil {
		return MoveResult{}, nil, err
	}

	if over, winner := g.board.GameOver(); over {
		g.state = GameOver
		g.winner = winner
		return res, &GameOverEvent{Winner: winner}, nil
	}
	return res, nil, nil
}

func (g *Game) applyMove(to Pos) (MoveResult, error) {
	if g.selected == nil {
		return MoveResult{}, ErrNoSelection
	}
	mv, ok := g.cachedMove(to)
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: %v to %v", ErrIllegalMove, g.selected.Pos, to)
	}

	if target := g.board.at(to); target != nil && !mv.Capture {
		// the cache no longer matches the board
		return MoveResult{}, fmt.Errorf("%w: %v is occupied", ErrIllegalMove, to)
	}

	res := MoveResult{Player: g.current, From: g.selected.Pos, To: to}
	if captured := g.board.relocate(g.selected.Pos, to); captured != nil {
		c := *captured
		res.Captured = &c
	}

	g.current = g.current.Other()
	g.clearSelection()
	g.state = AwaitingSelection
	g.history = append(g.history, res)
	return res, nil
}
