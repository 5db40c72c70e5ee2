package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hexathello/game"
)

// sampleLiteral is a hand-built two-turn literal history on a size-2
// board (7 cells, 14-entry state vectors) with player 1 winning 4-3.
func sampleLiteral() *History {
	h := NewLiteral(2, 2)

	state0 := make([]float64, 14)
	state0[0] = 1 // cell 0 owned by player 0
	state0[3] = 1 // cell 1 owned by player 1
	choices0 := []float64{0, 0, 1, 0, 0, 1, 0}
	action0 := []float64{0, 0, 1, 0, 0, 0, 0}
	h.Append(Row{
		TurnIndex: 0, CurrentPlayer: 0,
		BoardState: state0, ActionChoices: choices0, PlayerAction: action0,
		AgentID: "random-a",
	})

	state1 := make([]float64, 14)
	state1[0] = 1
	state1[4] = 1 // cell 2 now owned by player 0
	state1[3] = 1
	choices1 := []float64{0, 1, 0, 0, 0, 0, 1}
	action1 := []float64{0, 0, 0, 0, 0, 0, 1}
	h.Append(Row{
		TurnIndex: 1, CurrentPlayer: 1,
		BoardState: state1, ActionChoices: choices1, PlayerAction: action1,
		AgentID: "greedy-b",
	})

	h.SetOutcome(1, []int{3, 4})
	return h
}

func TestPovFromLiteral(t *testing.T) {
	lit := sampleLiteral()
	pov, err := PovFromLiteral(lit)
	require.NoError(t, err)

	require.Equal(t, Pov, pov.Type)
	require.Len(t, pov.Rows, 2)

	t.Run("player 0 rows are unchanged", func(t *testing.T) {
		row := pov.Rows[0]
		require.Equal(t, lit.Rows[0].BoardState, row.BoardState)
		require.Equal(t, 1, row.Winner, "absolute winner 1 seen from player 0")
		require.Equal(t, []int{3, 4}, row.Scores)
	})

	t.Run("player 1 rows rotate to their point of view", func(t *testing.T) {
		row := pov.Rows[1]
		shifted, err := game.PovShiftVector(lit.Rows[1].BoardState, 1, 2)
		require.NoError(t, err)
		require.Equal(t, shifted, row.BoardState)
		require.Equal(t, 0, row.Winner, "the mover won, so the pov winner is 0")
		require.Equal(t, []int{4, 3}, row.Scores)
		require.Equal(t, 1, row.CurrentPlayer, "current player is preserved")
		require.Equal(t, lit.Rows[1].ActionChoices, row.ActionChoices,
			"action choices are coordinate-space")
		require.Equal(t, lit.Rows[1].PlayerAction, row.PlayerAction,
			"player action is coordinate-space")
	})

	t.Run("rejects a non-literal input", func(t *testing.T) {
		_, err := PovFromLiteral(pov)
		require.Error(t, err)
	})
}

func TestPovRoundTrip(t *testing.T) {
	lit := sampleLiteral()
	pov, err := PovFromLiteral(lit)
	require.NoError(t, err)
	back, err := LiteralFromPov(pov)
	require.NoError(t, err)
	require.Equal(t, lit, back, "pov shift then inverse reproduces the literal history")
}

func TestPovRoundTripTiedGame(t *testing.T) {
	lit := sampleLiteral()
	lit.SetOutcome(game.NoWinner, []int{3, 3})

	pov, err := PovFromLiteral(lit)
	require.NoError(t, err)
	for _, row := range pov.Rows {
		require.Equal(t, game.NoWinner, row.Winner, "a tie stays a tie from every point of view")
	}

	back, err := LiteralFromPov(pov)
	require.NoError(t, err)
	require.Equal(t, lit, back)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	lit := sampleLiteral()
	for _, h := range []*History{lit} {
		packed, err := h.Pack()
		require.NoError(t, err)
		got, err := packed.Unpack()
		require.NoError(t, err)
		require.Equal(t, h, got)
	}

	pov, err := PovFromLiteral(lit)
	require.NoError(t, err)
	packed, err := pov.Pack()
	require.NoError(t, err)
	got, err := packed.Unpack()
	require.NoError(t, err)
	require.Equal(t, pov, got)
}

func TestHistoryFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	lit := sampleLiteral()

	t.Run("vector form", func(t *testing.T) {
		path := filepath.Join(dir, "literal.json")
		require.NoError(t, lit.WriteFile(path))
		got, err := ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, lit, got)
	})

	t.Run("packed form", func(t *testing.T) {
		packed, err := lit.Pack()
		require.NoError(t, err)
		path := filepath.Join(dir, "packed.json")
		require.NoError(t, packed.WriteFile(path))
		got, err := ReadDiskFile(path)
		require.NoError(t, err)
		require.Equal(t, packed, got)

		unpacked, err := got.Unpack()
		require.NoError(t, err)
		require.Equal(t, lit, unpacked)
	})
}
