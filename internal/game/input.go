package game

import "errors"

type ClickAction string

const (
	ClickIgnored  ClickAction = "ignored"
	ClickSelected ClickAction = "selected"
	ClickMoved    ClickAction = "moved"
)

// ClickOutcome reports what a click on the board did.
type ClickOutcome struct {
	Action   ClickAction    `json:"action"`
	Move     *MoveResult    `json:"move,omitempty"`
	GameOver *GameOverEvent `json:"game_over,omitempty"`
}

// Click handles a click on (row, col) the way a player expects from the
// board: with a piece selected it first tries to move there, then to
// reselect; otherwise it tries to select. A click that does nothing is not
// an error. Only off-grid coordinates and clicks after the game ended fail.
func (g *Game) Click(row, col int) (ClickOutcome, error) {
	if _, err := g.pos(row, col); err != nil {
		return ClickOutcome{Action: ClickIgnored}, err
	}
	if g.state == GameOver {
		return ClickOutcome{Action: ClickIgnored}, ErrGameOver
	}

	if g.state == PieceSelected {
		res, ev, err := g.MoveSelectedTo(row, col)
		if err == nil {
			return ClickOutcome{Action: ClickMoved, Move: &res, GameOver: ev}, nil
		}
		if !errors.Is(err, ErrIllegalMove) {
			return ClickOutcome{Action: ClickIgnored}, err
		}
	}

	if err := g.SelectAt(row, col); err != nil {
		if errors.Is(err, ErrInvalidSelection) {
			return ClickOutcome{Action: ClickIgnored}, nil
		}
		return ClickOutcome{Action: ClickIgnored}, err
	}
	return ClickOutcome{Action: ClickSelected}, nil
}
