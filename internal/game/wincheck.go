package game

// GameOver reports whether a side has run out of pieces. P1 is checked
// first, so if both sides were empty the winner would be P2.
func (b *Board) GameOver() (bool, Player) {
	if b.Count(P1) == 0 {
		return true, P2
	}
	if b.Count(P2) == 0 {
		return true, P1
	}
	return false, NoPlayer
}
