package game

import "fmt"

// CellStatus is the ownership of one cell: either unowned or owned by a
// player in [0, playerCount). The two cases are explicit so that a
// capture can never silently clear an owner during play.
type CellStatus struct {
	Owned  bool
	Player int
}

// Unowned is the status of an empty cell.
var Unowned = CellStatus{}

// OwnedBy returns the status of a cell held by player.
func OwnedBy(player int) CellStatus {
	return CellStatus{Owned: true, Player: player}
}

// Board is the authoritative game state: one CellStatus per valid
// coordinate, stored as a flat slice in the layout's canonical order so
// the domain is exactly the valid coordinate set by construction.
// Rules functions never mutate a Board in place; they return new
// snapshots, so sharing a prior snapshot across goroutines is safe.
type Board struct {
	layout *Layout
	cells  []CellStatus
}

// EmptyBoard returns a board with every cell unowned.
func EmptyBoard(layout *Layout) *Board {
	return &Board{
		layout: layout,
		cells:  make([]CellStatus, layout.CellCount()),
	}
}

// NewBoard returns the standard starting position: the six ring cells
// at distance 1 from the center split into contiguous blocks of
// 6/playerCount cells per player, walked in Directions order, with
// every other cell unowned. The ring must be on the board, so the
// layout size must be at least 2.
func NewBoard(layout *Layout) (*Board, error) {
	if layout.size < 2 {
		return nil, fmt.Errorf("%w: starting layout needs size of at least 2, got %d", ErrInvalidConfiguration, layout.size)
	}
	b := EmptyBoard(layout)
	block := 6 / layout.playerCount
	for i, d := range Directions {
		b.cells[layout.indexOf[d]] = OwnedBy(i / block)
	}
	return b, nil
}

// Layout returns the coordinate/index map the board is built on.
func (b *Board) Layout() *Layout { return b.layout }

// At returns the status of the cell at c.
func (b *Board) At(c Coord) (CellStatus, error) {
	i, err := b.layout.Index(c)
	if err != nil {
		return Unowned, err
	}
	return b.cells[i], nil
}

// Set writes the status of the cell at c on this board. It exists for
// scenario construction and corrective use; normal play goes through
// ApplyMove, which works on a fresh snapshot.
func (b *Board) Set(c Coord, s CellStatus) error {
	i, err := b.layout.Index(c)
	if err != nil {
		return err
	}
	b.cells[i] = s
	return nil
}

// Clone returns a deep copy sharing the immutable layout.
func (b *Board) Clone() *Board {
	cells := make([]CellStatus, len(b.cells))
	copy(cells, b.cells)
	return &Board{layout: b.layout, cells: cells}
}

// Scores returns the per-player cell counts, indexed by player.
func (b *Board) Scores() []int {
	scores := make([]int, b.layout.playerCount)
	for _, cs := range b.cells {
		if cs.Owned {
			scores[cs.Player]++
		}
	}
	return scores
}

// EmptyCount returns the number of unowned cells.
func (b *Board) EmptyCount() int {
	empty := 0
	for _, cs := range b.cells {
		if !cs.Owned {
			empty++
		}
	}
	return empty
}
