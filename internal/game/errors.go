package game

import "errors"

var (
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNoSelection      = errors.New("no piece selected")
	ErrIllegalMove      = errors.New("illegal move")
	ErrGameOver         = errors.New("game is over")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
