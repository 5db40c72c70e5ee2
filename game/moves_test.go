package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// flankedBoard is a size-3 board with one player-1 piece at the origin
// bracketed by a player-0 piece at (-1,0), so (1,0) is player 0's only
// flanking move.
func flankedBoard(t *testing.T) *Board {
	t.Helper()
	b := EmptyBoard(mustLayout(t, 3, 2))
	require.NoError(t, b.Set(Coord{-1, 0}, OwnedBy(0)))
	require.NoError(t, b.Set(Coord{0, 0}, OwnedBy(1)))
	return b
}

func TestLegalMovesSingleFlank(t *testing.T) {
	moves := LegalMoves(flankedBoard(t), 0)

	require.Len(t, moves, 1, "only the flanking move is legal")
	captures, ok := moves[Coord{1, 0}]
	require.True(t, ok, "the flanking move is at (1,0)")
	require.Equal(t, []CellCapture{
		{Coord: Coord{1, 0}, Status: OwnedBy(0)},
		{Coord: Coord{0, 0}, Status: OwnedBy(0)},
	}, captures, "exactly the bracketed cell is captured, played cell first")
}

func TestLegalMovesNeverIncludeOwnedCells(t *testing.T) {
	b, err := NewBoard(mustLayout(t, 3, 2))
	require.NoError(t, err)

	for player := 0; player < 2; player++ {
		for c := range LegalMoves(b, player) {
			cs, err := b.At(c)
			require.NoError(t, err)
			require.Equal(t, Unowned, cs, "legal move %v for player %d", c, player)
		}
	}
}

func TestLegalMovesOnStartingBoard(t *testing.T) {
	b, err := NewBoard(mustLayout(t, 3, 2))
	require.NoError(t, err)

	moves := LegalMoves(b, 0)
	require.NotEmpty(t, moves, "the first player can open")

	captures, ok := moves[Coord{-1, -1}]
	require.True(t, ok, "(-1,-1) flanks (-1,0) against (-1,1)")
	require.Equal(t, []CellCapture{
		{Coord: Coord{-1, -1}, Status: OwnedBy(0)},
		{Coord: Coord{-1, 0}, Status: OwnedBy(0)},
	}, captures)
}

func TestHasLegalMoveAgreesWithLegalMoves(t *testing.T) {
	b, err := NewBoard(mustLayout(t, 3, 2))
	require.NoError(t, err)
	for player := 0; player < 2; player++ {
		require.Equal(t, len(LegalMoves(b, player)) > 0, HasLegalMove(b, player))
	}

	empty := EmptyBoard(mustLayout(t, 3, 2))
	require.False(t, HasLegalMove(empty, 0), "no pieces, no flanks")
}

func TestApplyMove(t *testing.T) {
	b := flankedBoard(t)
	moves := LegalMoves(b, 0)
	move := PlayerMove{Player: 0, Coord: Coord{1, 0}, Captures: moves[Coord{1, 0}]}

	next, err := ApplyMove(b, move)
	require.NoError(t, err)

	for _, c := range []Coord{{-1, 0}, {0, 0}, {1, 0}} {
		cs, err := next.At(c)
		require.NoError(t, err)
		require.Equal(t, OwnedBy(0), cs, "cell %v after the flip", c)
	}
	require.Equal(t, []int{3, 0}, next.Scores())

	// The input snapshot stays untouched.
	cs, err := b.At(Coord{1, 0})
	require.NoError(t, err)
	require.Equal(t, Unowned, cs)
	cs, err = b.At(Coord{0, 0})
	require.NoError(t, err)
	require.Equal(t, OwnedBy(1), cs)
}

func TestApplyMoveRejectsInconsistentMoves(t *testing.T) {
	b := flankedBoard(t)

	t.Run("no flips", func(t *testing.T) {
		_, err := ApplyMove(b, PlayerMove{
			Player: 0, Coord: Coord{2, 0},
			Captures: []CellCapture{{Coord: Coord{2, 0}, Status: OwnedBy(0)}},
		})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("playing onto an owned cell", func(t *testing.T) {
		_, err := ApplyMove(b, PlayerMove{
			Player: 0, Coord: Coord{-1, 0},
			Captures: []CellCapture{
				{Coord: Coord{-1, 0}, Status: OwnedBy(0)},
				{Coord: Coord{0, 0}, Status: OwnedBy(0)},
			},
		})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("capturing an empty cell", func(t *testing.T) {
		_, err := ApplyMove(b, PlayerMove{
			Player: 0, Coord: Coord{1, 0},
			Captures: []CellCapture{
				{Coord: Coord{1, 0}, Status: OwnedBy(0)},
				{Coord: Coord{2, 0}, Status: OwnedBy(0)},
			},
		})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("capturing an own cell", func(t *testing.T) {
		_, err := ApplyMove(b, PlayerMove{
			Player: 0, Coord: Coord{1, 0},
			Captures: []CellCapture{
				{Coord: Coord{1, 0}, Status: OwnedBy(0)},
				{Coord: Coord{-1, 0}, Status: OwnedBy(0)},
			},
		})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("clearing a cell during play", func(t *testing.T) {
		_, err := ApplyMove(b, PlayerMove{
			Player: 0, Coord: Coord{1, 0},
			Captures: []CellCapture{
				{Coord: Coord{1, 0}, Status: OwnedBy(0)},
				{Coord: Coord{0, 0}, Status: Unowned},
			},
		})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("capture outside the board", func(t *testing.T) {
		_, err := ApplyMove(b, PlayerMove{
			Player: 0, Coord: Coord{1, 0},
			Captures: []CellCapture{
				{Coord: Coord{1, 0}, Status: OwnedBy(0)},
				{Coord: Coord{3, 0}, Status: OwnedBy(0)},
			},
		})
		require.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestOutcome(t *testing.T) {
	t.Run("majority wins", func(t *testing.T) {
		b := EmptyBoard(mustLayout(t, 3, 2))
		require.NoError(t, b.Set(Coord{0, 0}, OwnedBy(1)))
		require.NoError(t, b.Set(Coord{1, 0}, OwnedBy(1)))
		require.NoError(t, b.Set(Coord{0, 1}, OwnedBy(0)))

		winner, scores := Outcome(b)
		require.Equal(t, 1, winner)
		require.Equal(t, []int{1, 2}, scores)
	})

	t.Run("tie has no winner", func(t *testing.T) {
		b, err := NewBoard(mustLayout(t, 3, 2))
		require.NoError(t, err)

		winner, scores := Outcome(b)
		require.Equal(t, NoWinner, winner)
		require.Equal(t, []int{3, 3}, scores)
	})
}

func TestTerminal(t *testing.T) {
	start3, err := NewBoard(mustLayout(t, 3, 2))
	require.NoError(t, err)
	require.False(t, Terminal(start3), "size-3 opening has legal moves")

	// On a size-2 board every outward walk leaves the board after one
	// step, so the opening position is already dead.
	start2, err := NewBoard(mustLayout(t, 2, 2))
	require.NoError(t, err)
	require.True(t, Terminal(start2))

	require.True(t, Terminal(EmptyBoard(mustLayout(t, 3, 2))), "no pieces, no moves")
}
