package game

import "fmt"

// StateVector encodes b as a flat one-hot vector of length
// cellCount*playerCount. For the cell at index i, the block
// [i*playerCount, (i+1)*playerCount) holds a 1.0 at the owner's
// position, or all zeros when the cell is unowned.
func StateVector(b *Board) []float64 {
	n := b.layout.playerCount
	v := make([]float64, b.layout.CellCount()*n)
	for i, cs := range b.cells {
		if cs.Owned {
			v[i*n+cs.Player] = 1
		}
	}
	return v
}

// BoardFromStateVector is the inverse of StateVector. The vector must
// have exactly cellCount*playerCount binary entries with at most one
// set bit per block.
func BoardFromStateVector(layout *Layout, v []float64) (*Board, error) {
	n := layout.playerCount
	if len(v) != layout.CellCount()*n {
		return nil, fmt.Errorf("%w: state vector length %d, want %d",
			ErrMalformedVector, len(v), layout.CellCount()*n)
	}
	b := EmptyBoard(layout)
	for i := 0; i < layout.CellCount(); i++ {
		owner := -1
		for j, x := range v[i*n : (i+1)*n] {
			switch x {
			case 0:
			case 1:
				if owner >= 0 {
					return nil, fmt.Errorf("%w: cell %d owned by players %d and %d",
						ErrMalformedVector, i, owner, j)
				}
				owner = j
			default:
				return nil, fmt.Errorf("%w: non-binary entry %v at cell %d",
					ErrMalformedVector, x, i)
			}
		}
		if owner >= 0 {
			b.cells[i] = OwnedBy(owner)
		}
	}
	return b, nil
}

// MoveVector encodes a chosen coordinate as a one-hot vector of length
// cellCount.
func MoveVector(layout *Layout, c Coord) ([]float64, error) {
	i, err := layout.Index(c)
	if err != nil {
		return nil, err
	}
	v := make([]float64, layout.CellCount())
	v[i] = 1
	return v, nil
}

// CoordFromMoveVector is the inverse of MoveVector. The vector must
// have exactly one set bit.
func CoordFromMoveVector(layout *Layout, v []float64) (Coord, error) {
	if len(v) != layout.CellCount() {
		return Coord{}, fmt.Errorf("%w: move vector length %d, want %d",
			ErrMalformedVector, len(v), layout.CellCount())
	}
	chosen := -1
	for i, x := range v {
		switch x {
		case 0:
		case 1:
			if chosen >= 0 {
				return Coord{}, fmt.Errorf("%w: move vector set at both %d and %d",
					ErrMalformedVector, chosen, i)
			}
			chosen = i
		default:
			return Coord{}, fmt.Errorf("%w: non-binary entry %v at index %d",
				ErrMalformedVector, x, i)
		}
	}
	if chosen < 0 {
		return Coord{}, fmt.Errorf("%w: move vector has no set bit", ErrMalformedVector)
	}
	return layout.coordAt[chosen], nil
}

// LegalMoveVector encodes a legal-move set as a flag vector of length
// cellCount, with a 1.0 at every legal coordinate.
func LegalMoveVector(layout *Layout, choices MoveChoiceDict) ([]float64, error) {
	v := make([]float64, layout.CellCount())
	for c := range choices {
		i, err := layout.Index(c)
		if err != nil {
			return nil, err
		}
		v[i] = 1
	}
	return v, nil
}

// PovShiftVector rotates every per-cell ownership block of a state
// vector so that player's bit lands at position 0: new bit j takes old
// bit (j+player) mod playerCount. Unowned blocks stay all-zero. Agents
// use this to evaluate any board as if they were player 0. Move and
// legality vectors are coordinate-space and are never shifted.
func PovShiftVector(v []float64, player, playerCount int) ([]float64, error) {
	if playerCount < 1 || len(v)%playerCount != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of player count %d",
			ErrMalformedVector, len(v), playerCount)
	}
	if player < 0 || player >= playerCount {
		return nil, fmt.Errorf("%w: pov player %d of %d", ErrOutOfRange, player, playerCount)
	}
	out := make([]float64, len(v))
	for start := 0; start < len(v); start += playerCount {
		for j := 0; j < playerCount; j++ {
			out[start+j] = v[start+(j+player)%playerCount]
		}
	}
	return out, nil
}

// PovShiftBoard relabels owners so that player becomes player 0,
// matching PovShiftVector on the board's state vector.
func PovShiftBoard(b *Board, player int) (*Board, error) {
	n := b.layout.playerCount
	if player < 0 || player >= n {
		return nil, fmt.Errorf("%w: pov player %d of %d", ErrOutOfRange, player, n)
	}
	out := b.Clone()
	for i, cs := range out.cells {
		if cs.Owned {
			out.cells[i] = OwnedBy(((cs.Player-player)%n + n) % n)
		}
	}
	return out, nil
}
