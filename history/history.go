// Package history records played hexathello games turn by turn and
// converts them between the literal (absolute player id), point-of-view
// (mover-relative), and disk (packed integer) representations used to
// train agents.
package history

import (
	"fmt"

	"hexathello/game"
)

// Type tags which representation a history is in.
type Type string

const (
	Literal Type = "literal"
	Pov     Type = "pov"
)

// Row is one turn of a game: the board before the move, the legal-move
// flags for the mover, and the move actually chosen, all in the vector
// layout fixed by the game's size and player count.
//
// Winner and Scores are only populated in POV histories, where they are
// re-rotated per row to be relative to that row's mover. Literal
// histories carry them once at the game level instead.
type Row struct {
	TurnIndex     int       `json:"turn_index"`
	CurrentPlayer int       `json:"current_player"`
	BoardState    []float64 `json:"board_state"`
	ActionChoices []float64 `json:"action_choices"`
	PlayerAction  []float64 `json:"player_action"`
	AgentID       string    `json:"ai_id,omitempty"`
	Winner        int       `json:"winner"`
	Scores        []int     `json:"scores,omitempty"`
}

// History is the full record of one game. Rows are appended as the game
// is played and never rewritten; POV shifting and integer packing
// produce new histories.
type History struct {
	PlayerCount int   `json:"player_count"`
	Size        int   `json:"size"`
	Type        Type  `json:"history_type"`
	Winner      int   `json:"winner"`
	Scores      []int `json:"scores,omitempty"`
	Rows        []Row `json:"rows"`
}

// NewLiteral returns an empty literal history. The starting scores are
// the middle ring split evenly among the players; the winner is set by
// SetOutcome when the game ends.
func NewLiteral(playerCount, size int) *History {
	scores := make([]int, playerCount)
	for i := range scores {
		scores[i] = 6 / playerCount
	}
	return &History{
		PlayerCount: playerCount,
		Size:        size,
		Type:        Literal,
		Winner:      game.NoWinner,
		Scores:      scores,
	}
}

// Append adds one turn. In literal histories the per-row winner and
// scores stay unset; they only exist after a POV shift.
func (h *History) Append(row Row) {
	if h.Type == Literal {
		row.Winner = game.NoWinner
		row.Scores = nil
	}
	h.Rows = append(h.Rows, row)
}

// SetOutcome records the final result on a literal history.
func (h *History) SetOutcome(winner int, scores []int) {
	h.Winner = winner
	h.Scores = append([]int(nil), scores...)
}

// rotateScores makes a score list mover-relative: position j takes the
// score of absolute player (j+by) mod len.
func rotateScores(scores []int, by int) []int {
	n := len(scores)
	out := make([]int, n)
	for j := range out {
		out[j] = scores[((j+by)%n+n)%n]
	}
	return out
}

func equalScores(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func rotatePlayer(player, by, playerCount int) int {
	if player == game.NoWinner {
		return game.NoWinner
	}
	return ((player-by)%playerCount + playerCount) % playerCount
}

// PovFromLiteral rewrites a literal history so every row reads as if
// its mover were player 0: the board state blocks are rotated by the
// row's current player, and the game-level winner and scores move into
// each row, re-rotated by that row's current player. The current player
// and the action vectors are coordinate-space and stay unchanged.
func PovFromLiteral(h *History) (*History, error) {
	if h.Type != Literal {
		return nil, fmt.Errorf("history: pov shift needs a literal history, got %q", h.Type)
	}
	out := &History{
		PlayerCount: h.PlayerCount,
		Size:        h.Size,
		Type:        Pov,
		Winner:      game.NoWinner,
		Rows:        make([]Row, 0, len(h.Rows)),
	}
	for _, row := range h.Rows {
		shifted, err := game.PovShiftVector(row.BoardState, row.CurrentPlayer, h.PlayerCount)
		if err != nil {
			return nil, fmt.Errorf("history: turn %d: %w", row.TurnIndex, err)
		}
		out.Rows = append(out.Rows, Row{
			TurnIndex:     row.TurnIndex,
			CurrentPlayer: row.CurrentPlayer,
			BoardState:    shifted,
			ActionChoices: append([]float64(nil), row.ActionChoices...),
			PlayerAction:  append([]float64(nil), row.PlayerAction...),
			AgentID:       row.AgentID,
			Winner:        rotatePlayer(h.Winner, row.CurrentPlayer, h.PlayerCount),
			Scores:        rotateScores(h.Scores, row.CurrentPlayer),
		})
	}
	return out, nil
}

// LiteralFromPov is the exact inverse of PovFromLiteral. The per-row
// winner and scores must agree once rotated back to absolute ids; a
// disagreement means the history was not produced from a single game.
func LiteralFromPov(h *History) (*History, error) {
	if h.Type != Pov {
		return nil, fmt.Errorf("history: literal shift needs a pov history, got %q", h.Type)
	}
	out := &History{
		PlayerCount: h.PlayerCount,
		Size:        h.Size,
		Type:        Literal,
		Winner:      game.NoWinner,
		Rows:        make([]Row, 0, len(h.Rows)),
	}
	for i, row := range h.Rows {
		// Shifting by playerCount-current undoes the POV rotation.
		back := (h.PlayerCount - row.CurrentPlayer%h.PlayerCount) % h.PlayerCount
		restored, err := game.PovShiftVector(row.BoardState, back, h.PlayerCount)
		if err != nil {
			return nil, fmt.Errorf("history: turn %d: %w", row.TurnIndex, err)
		}
		winner := rotatePlayer(row.Winner, -row.CurrentPlayer, h.PlayerCount)
		scores := rotateScores(row.Scores, -row.CurrentPlayer)
		if i == 0 {
			out.Winner = winner
			out.Scores = scores
		} else if winner != out.Winner || !equalScores(scores, out.Scores) {
			return nil, fmt.Errorf("history: turn %d restores winner %d scores %v, turn %d restored winner %d scores %v",
				row.TurnIndex, winner, scores, h.Rows[0].TurnIndex, out.Winner, out.Scores)
		}
		out.Rows = append(out.Rows, Row{
			TurnIndex:     row.TurnIndex,
			CurrentPlayer: row.CurrentPlayer,
			BoardState:    restored,
			ActionChoices: append([]float64(nil), row.ActionChoices...),
			PlayerAction:  append([]float64(nil), row.PlayerAction...),
			AgentID:       row.AgentID,
			Winner:        game.NoWinner,
		})
	}
	return out, nil
}
