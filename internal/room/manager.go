package room

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"wall-duel/internal/config"
	"wall-duel/internal/game"
	"wall-duel/internal/random"
)

var ErrRoomNotFound = errors.New("room not found")

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub}
}

// CreateOptions overrides the configured board for one table. Nil fields
// fall back to the configuration. A configured seed of 0 means draw one;
// an explicit Seed is always used as given, 0 included.
type CreateOptions struct {
	GridSize  *int
	DarkCells *int
	Seed      *int64
}

func (m *Manager) CreateRoom(opts CreateOptions) (*Room, error) {
	gopts := m.cfg.Game.Options()
	if opts.GridSize != nil {
		gopts.Size = *opts.GridSize
	}
	if opts.DarkCells != nil {
		gopts.DarkCells = *opts.DarkCells
	}

	seed, err := m.seed(opts.Seed)
	if err != nil {
		return nil, err
	}

	g, err := game.NewGameWithOptions(gopts, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	r := &Room{
		ID:        uuid.NewString(),
		Code:      m.newCode(),
		Seed:      seed,
		CreatedAt: time.Now(),
		game:      g,
	}
	m.store.SaveRoom(r)
	log.Printf("room %s created: %dx%d grid, %d dark cells, seed %d", r.Code, gopts.Size, gopts.Size, gopts.DarkCells, seed)
	return r, nil
}

func (m *Manager) seed(requested *int64) (int64, error) {
	if requested != nil {
		return *requested, nil
	}
	if m.cfg.Game.Seed != 0 {
		return m.cfg.Game.Seed, nil
	}
	return random.NewSeed()
}

// Close removes a table. Watchers get a room-closed event.
func (m *Manager) Close(code string) error {
	if _, err := m.room(code); err != nil {
		return err
	}
	m.store.DeleteRoom(code)
	log.Printf("room %s closed", code)
	m.broadcast(code, ActionRoomClosed, map[string]string{"code": code})
	return nil
}

// Codes lists the open tables.
func (m *Manager) Codes() []string {
	return m.store.Codes()
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) room(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	return r, nil
}

func (m *Manager) broadcast(code, action string, data any) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(code, action, data)
}

func (m *Manager) Snapshot(code string) (View, error) {
	r, err := m.room(code)
	if err != nil {
		return View{}, err
	}
	return r.View(), nil
}

// Select picks up the current player's piece on (row, col).
func (m *Manager) Select(code string, row, col int) (View, error) {
	r, err := m.room(code)
	if err != nil {
		return View{}, err
	}

	r.mu.Lock()
	err = r.game.SelectAt(row, col)
	v := r.view()
	r.mu.Unlock()

	if err != nil {
		log.Printf("room %s: select (%d,%d) rejected: %v", code, row, col, err)
		return v, err
	}
	m.broadcast(code, ActionStateUpdated, v)
	return v, nil
}

// Destinations lists the legal moves of the selected piece.
func (m *Manager) Destinations(code string) ([]game.Move, error) {
	r, err := m.room(code)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.LegalMoves(), nil
}

// MoveOutcome is the result of a successful move.
type MoveOutcome struct {
	Room     View                `json:"room"`
	Move     game.MoveResult     `json:"move"`
	GameOver *game.GameOverEvent `json:"game_over,omitempty"`
}

// Move moves the selected piece to (row, col).
func (m *Manager) Move(code string, row, col int) (MoveOutcome, error) {
	r, err := m.room(code)
	if err != nil {
		return MoveOutcome{}, err
	}

	r.mu.Lock()
	res, ev, err := r.game.MoveSelectedTo(row, col)
	v := r.view()
	r.mu.Unlock()

	if err != nil {
		log.Printf("room %s: move to (%d,%d) rejected: %v", code, row, col, err)
		return MoveOutcome{Room: v}, err
	}
	out := MoveOutcome{Room: v, Move: res, GameOver: ev}
	m.announce(code, out)
	return out, nil
}

func (m *Manager) announce(code string, out MoveOutcome) {
	m.broadcast(code, ActionMoveApplied, out)
	if out.GameOver != nil {
		log.Printf("room %s: game over, winner %v", code, out.GameOver.Winner)
		m.broadcast(code, ActionGameOver, out)
	}
}

// ClickResult pairs a click outcome with the table it changed.
type ClickResult struct {
	Room  View              `json:"room"`
	Click game.ClickOutcome `json:"click"`
}

func (m *Manager) Click(code string, row, col int) (ClickResult, error) {
	r, err := m.room(code)
	if err != nil {
		return ClickResult{}, err
	}

	r.mu.Lock()
	click, err := r.game.Click(row, col)
	v := r.view()
	r.mu.Unlock()

	out := ClickResult{Room: v, Click: click}
	if err != nil {
		return out, err
	}
	switch click.Action {
	case game.ClickMoved:
		m.announce(code, MoveOutcome{Room: v, Move: *click.Move, GameOver: click.GameOver})
	case game.ClickSelected:
		m.broadcast(code, ActionStateUpdated, v)
	}
	return out, nil
}

// Reset replaces the table's game with a fresh one drawn from the same
// random stream.
func (m *Manager) Reset(code string) (View, error) {
	r, err := m.room(code)
	if err != nil {
		return View{}, err
	}

	r.mu.Lock()
	next, err := r.game.Reset()
	if err == nil {
		r.game = next
	}
	v := r.view()
	r.mu.Unlock()

	if err != nil {
		return v, err
	}
	log.Printf("room %s reset", code)
	m.broadcast(code, ActionStateUpdated, v)
	return v, nil
}

// Cell describes one cell for renderers that query cell by cell.
type Cell struct {
	Pos   game.Pos    `json:"pos"`
	Wall  bool        `json:"wall"`
	Dark  bool        `json:"dark"`
	Piece *game.Piece `json:"piece,omitempty"`
}

func (m *Manager) Cell(code string, row, col int) (Cell, error) {
	r, err := m.room(code)
	if err != nil {
		return Cell{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	wall, err := r.game.IsWall(row, col)
	if err != nil {
		return Cell{}, err
	}
	dark, _ := r.game.IsDarkCell(row, col)
	c := Cell{Pos: game.Pos{Row: row, Col: col}, Wall: wall, Dark: dark}
	if pc, ok, _ := r.game.PieceAt(row, col); ok {
		c.Piece = &pc
	}
	return c, nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func (m *Manager) newCode() string {
	for {
		code := randCode(6)
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}
