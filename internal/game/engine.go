package game

// LegalMoves lists every destination p may reach on b, in row-major delta
// order. The board is only read.
//
// A piece reaches any cell within Manhattan distance 2 of it (inside the
// 5x5 delta box). Touching a dark cell, at either end, limits the move to a
// single orthogonal step. Captures happen only on strict diagonal contact;
// an opposing piece anywhere else blocks the cell outright. A diagonal
// step counts two on the Manhattan scale, so a piece on or capturing onto a
// dark cell can never capture.
func LegalMoves(b *Board, p Piece) []Move {
	var moves []Move

	for dr := -MaxReach; dr <= MaxReach; dr++ {
		for dc := -MaxReach; dc <= MaxReach; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			to := Pos{p.Pos.Row + dr, p.Pos.Col + dc}

			if !b.InBounds(to) || b.IsWall(to) {
				continue
			}
			target := b.at(to)
			if target != nil && target.Owner == p.Owner {
				continue
			}

			dist := abs(dr) + abs(dc)
			if (b.IsDark(p.Pos) || b.IsDark(to)) && dist > 1 {
				continue
			}
			if dist > MaxReach {
				continue
			}

			if target != nil {
				if isDiagonalStep(dr, dc) {
					moves = append(moves, Move{To: to, Capture: true})
				}
				continue
			}
			moves = append(moves, Move{To: to})
		}
	}

	return moves
}

func isDiagonalStep(dr, dc int) bool {
	return abs(dr) == 1 && abs(dc) == 1
}
