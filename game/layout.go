package game

import "fmt"

// Coord is an axial hex coordinate (q, r). A coordinate is valid for a
// board of a given size when its hex distance from the origin is less
// than size.
type Coord struct {
	Q, R int
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.Q + d.Q, c.R + d.R}
}

// Directions lists the six axial unit vectors in clockwise order
// starting east. Capture walks and the starting ring both follow this
// order.
var Directions = [6]Coord{
	{1, 0}, {0, 1}, {-1, 1},
	{-1, 0}, {0, -1}, {1, -1},
}

// HexDistance returns the minimum number of adjacent-cell steps between
// two coordinates.
func HexDistance(a, b Coord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Layout fixes the bijection between axial coordinates and dense vector
// indices for one board size, plus the player count that sizes every
// per-cell one-hot block. The enumeration order is the schema for all
// state and move vectors: q runs from -(size-1) to size-1, and for each
// q, r ascends over its valid range. A Layout is immutable and safe to
// share across concurrent games.
type Layout struct {
	size        int
	playerCount int
	indexOf     map[Coord]int
	coordAt     []Coord
}

// NewLayout builds the coordinate/index map for a hexagon of the given
// size. playerCount is restricted to 2, 3, or 6: the only values that
// split the six middle-ring cells evenly into symmetric starting
// clusters.
func NewLayout(size, playerCount int) (*Layout, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d is below 1", ErrInvalidConfiguration, size)
	}
	switch playerCount {
	case 2, 3, 6:
	default:
		return nil, fmt.Errorf("%w: player count %d is not 2, 3 or 6", ErrInvalidConfiguration, playerCount)
	}

	l := &Layout{
		size:        size,
		playerCount: playerCount,
		indexOf:     make(map[Coord]int),
	}
	for q := -(size - 1); q <= size-1; q++ {
		rMin := max(-(size-1), -(size-1)-q)
		rMax := min(size-1, size-1-q)
		for r := rMin; r <= rMax; r++ {
			c := Coord{q, r}
			l.indexOf[c] = len(l.coordAt)
			l.coordAt = append(l.coordAt, c)
		}
	}
	return l, nil
}

// Size returns the configured hexagon size.
func (l *Layout) Size() int { return l.size }

// PlayerCount returns the configured number of players.
func (l *Layout) PlayerCount() int { return l.playerCount }

// CellCount returns the number of valid coordinates, 3*size*(size-1)+1.
func (l *Layout) CellCount() int { return len(l.coordAt) }

// Contains reports whether c is a valid coordinate for this layout.
func (l *Layout) Contains(c Coord) bool {
	_, ok := l.indexOf[c]
	return ok
}

// Index returns the dense index of c in canonical enumeration order.
func (l *Layout) Index(c Coord) (int, error) {
	i, ok := l.indexOf[c]
	if !ok {
		return 0, fmt.Errorf("%w: (%d,%d) for size %d", ErrOutOfRange, c.Q, c.R, l.size)
	}
	return i, nil
}

// Coord returns the coordinate at dense index i.
func (l *Layout) Coord(i int) (Coord, error) {
	if i < 0 || i >= len(l.coordAt) {
		return Coord{}, fmt.Errorf("%w: index %d, cell count %d", ErrOutOfRange, i, len(l.coordAt))
	}
	return l.coordAt[i], nil
}

// Coords returns every valid coordinate in canonical order. The caller
// must not modify the returned slice.
func (l *Layout) Coords() []Coord { return l.coordAt }
