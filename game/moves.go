package game

import "fmt"

// NoWinner marks a tied or unfinished game.
const NoWinner = -1

// CellCapture is a pending ownership change for one cell. During play
// the new status always names a concrete player; an unowned status only
// appears in corrective use outside a game.
type CellCapture struct {
	Coord  Coord
	Status CellStatus
}

// PlayerMove is everything one move changes: the cell played at, first
// in Captures, followed by every flipped cell. It must only be built
// from LegalMoves output.
type PlayerMove struct {
	Player   int
	Coord    Coord
	Captures []CellCapture
}

// MoveChoiceDict maps each legal coordinate for a player to the ordered
// capture list that move would cause: the played cell first, then the
// flipped runs in Directions order, each walking outward.
type MoveChoiceDict map[Coord][]CellCapture

// capturesAt walks the six directions from c and collects every
// opponent run that is terminated by a cell owned by player. A run that
// reaches an empty cell or the board edge captures nothing.
func capturesAt(b *Board, c Coord, player int) []CellCapture {
	var flips []CellCapture
	for _, d := range Directions {
		var run []CellCapture
		for cur := c.Add(d); ; cur = cur.Add(d) {
			i, ok := b.layout.indexOf[cur]
			if !ok {
				run = nil
				break
			}
			cs := b.cells[i]
			if !cs.Owned {
				run = nil
				break
			}
			if cs.Player == player {
				break
			}
			run = append(run, CellCapture{Coord: cur, Status: OwnedBy(player)})
		}
		flips = append(flips, run...)
	}
	return flips
}

// LegalMoves enumerates every legal move for player on b. A coordinate
// is legal iff it is unowned and at least one direction yields a
// non-empty capture run. Already-owned coordinates are never legal.
func LegalMoves(b *Board, player int) MoveChoiceDict {
	moves := make(MoveChoiceDict)
	for i, cs := range b.cells {
		if cs.Owned {
			continue
		}
		c := b.layout.coordAt[i]
		flips := capturesAt(b, c, player)
		if len(flips) == 0 {
			continue
		}
		captures := make([]CellCapture, 0, len(flips)+1)
		captures = append(captures, CellCapture{Coord: c, Status: OwnedBy(player)})
		captures = append(captures, flips...)
		moves[c] = captures
	}
	return moves
}

// HasLegalMove reports whether player has any legal move on b, without
// enumerating the full capture lists.
func HasLegalMove(b *Board, player int) bool {
	for i, cs := range b.cells {
		if cs.Owned {
			continue
		}
		if len(capturesAt(b, b.layout.coordAt[i], player)) > 0 {
			return true
		}
	}
	return false
}

// ApplyMove returns a new board with every capture in m applied. The
// move is checked defensively: the played cell must be unowned, every
// flipped cell must currently belong to an opponent, and every new
// status must name the moving player.
func ApplyMove(b *Board, m PlayerMove) (*Board, error) {
	if len(m.Captures) < 2 {
		return nil, fmt.Errorf("%w: move at (%d,%d) flips no cells", ErrIllegalMove, m.Coord.Q, m.Coord.R)
	}
	next := b.Clone()
	for _, cc := range m.Captures {
		i, err := b.layout.Index(cc.Coord)
		if err != nil {
			return nil, err
		}
		if !cc.Status.Owned || cc.Status.Player != m.Player {
			return nil, fmt.Errorf("%w: capture at (%d,%d) does not assign to player %d",
				ErrIllegalMove, cc.Coord.Q, cc.Coord.R, m.Player)
		}
		cur := b.cells[i]
		if cc.Coord == m.Coord {
			if cur.Owned {
				return nil, fmt.Errorf("%w: cell (%d,%d) is already owned by player %d",
					ErrIllegalMove, cc.Coord.Q, cc.Coord.R, cur.Player)
			}
		} else if !cur.Owned || cur.Player == m.Player {
			return nil, fmt.Errorf("%w: cell (%d,%d) is not held by an opponent of player %d",
				ErrIllegalMove, cc.Coord.Q, cc.Coord.R, m.Player)
		}
		next.cells[i] = cc.Status
	}
	return next, nil
}

// Terminal reports whether the game on b is over: the board is full or
// no player has a legal move left.
func Terminal(b *Board) bool {
	if b.EmptyCount() == 0 {
		return true
	}
	for p := 0; p < b.layout.playerCount; p++ {
		if HasLegalMove(b, p) {
			return false
		}
	}
	return true
}

// Outcome scores b: the winner is the player holding the most cells,
// NoWinner on a tie. Scores are the per-player cell counts.
func Outcome(b *Board) (winner int, scores []int) {
	scores = b.Scores()
	winner = NoWinner
	best := -1
	tied := false
	for p, s := range scores {
		switch {
		case s > best:
			best = s
			winner = p
			tied = false
		case s == best:
			tied = true
		}
	}
	if tied {
		winner = NoWinner
	}
	return winner, scores
}
