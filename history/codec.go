package history

import (
	"fmt"
	"math/big"

	"hexathello/game"
)

// VectorAsInt packs a binary vector into a non-negative integer, most
// significant bit first: index 0 of the vector is the highest bit. The
// packing is a bijection for a fixed vector length; leading zero bits
// are dropped, so decoding needs the length back.
func VectorAsInt(v []float64) (*big.Int, error) {
	x := new(big.Int)
	for i, bit := range v {
		x.Lsh(x, 1)
		switch bit {
		case 0:
		case 1:
			x.SetBit(x, 0, 1)
		default:
			return nil, fmt.Errorf("%w: non-binary entry %v at index %d",
				game.ErrMalformedVector, bit, i)
		}
	}
	return x, nil
}

// IntAsVector unpacks a packed integer into a binary vector of exactly
// the given length, left-padding with zero bits.
func IntAsVector(x *big.Int, length int) ([]float64, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %s", game.ErrOverflow, x)
	}
	if x.BitLen() > length {
		return nil, fmt.Errorf("%w: value needs %d bits, declared length %d",
			game.ErrOverflow, x.BitLen(), length)
	}
	v := make([]float64, length)
	for i := 0; i < x.BitLen(); i++ {
		if x.Bit(i) == 1 {
			v[length-1-i] = 1
		}
	}
	return v, nil
}

// DiskRow is a Row with its three vectors packed into integers.
type DiskRow struct {
	TurnIndex     int      `json:"turn_index"`
	CurrentPlayer int      `json:"current_player"`
	BoardState    *big.Int `json:"board_state"`
	ActionChoices *big.Int `json:"action_choices"`
	PlayerAction  *big.Int `json:"player_action"`
	AgentID       string   `json:"ai_id,omitempty"`
	Winner        int      `json:"winner"`
	Scores        []int    `json:"scores,omitempty"`
}

// DiskHistory is the compact storage form of a History. Decoding needs
// size and player count to rebuild the vector lengths, which is why
// both always travel with the rows.
type DiskHistory struct {
	PlayerCount int       `json:"player_count"`
	Size        int       `json:"size"`
	Type        Type      `json:"history_type"`
	Winner      int       `json:"winner"`
	Scores      []int     `json:"scores,omitempty"`
	Rows        []DiskRow `json:"rows"`
}

// Pack replaces every row's vectors with their packed integers.
func (h *History) Pack() (*DiskHistory, error) {
	out := &DiskHistory{
		PlayerCount: h.PlayerCount,
		Size:        h.Size,
		Type:        h.Type,
		Winner:      h.Winner,
		Scores:      append([]int(nil), h.Scores...),
		Rows:        make([]DiskRow, 0, len(h.Rows)),
	}
	for _, row := range h.Rows {
		board, err := VectorAsInt(row.BoardState)
		if err != nil {
			return nil, fmt.Errorf("history: turn %d board state: %w", row.TurnIndex, err)
		}
		choices, err := VectorAsInt(row.ActionChoices)
		if err != nil {
			return nil, fmt.Errorf("history: turn %d action choices: %w", row.TurnIndex, err)
		}
		action, err := VectorAsInt(row.PlayerAction)
		if err != nil {
			return nil, fmt.Errorf("history: turn %d player action: %w", row.TurnIndex, err)
		}
		out.Rows = append(out.Rows, DiskRow{
			TurnIndex:     row.TurnIndex,
			CurrentPlayer: row.CurrentPlayer,
			BoardState:    board,
			ActionChoices: choices,
			PlayerAction:  action,
			AgentID:       row.AgentID,
			Winner:        row.Winner,
			Scores:        append([]int(nil), row.Scores...),
		})
	}
	return out, nil
}

// Unpack restores the vector form, deriving the vector lengths from the
// recorded size and player count.
func (d *DiskHistory) Unpack() (*History, error) {
	layout, err := game.NewLayout(d.Size, d.PlayerCount)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	moveLen := layout.CellCount()
	stateLen := moveLen * d.PlayerCount

	out := &History{
		PlayerCount: d.PlayerCount,
		Size:        d.Size,
		Type:        d.Type,
		Winner:      d.Winner,
		Scores:      append([]int(nil), d.Scores...),
		Rows:        make([]Row, 0, len(d.Rows)),
	}
	for _, row := range d.Rows {
		board, err := IntAsVector(row.BoardState, stateLen)
		if err != nil {
			return nil, fmt.Errorf("history: turn %d board state: %w", row.TurnIndex, err)
		}
		choices, err := IntAsVector(row.ActionChoices, moveLen)
		if err != nil {
			return nil, fmt.Errorf("history: turn %d action choices: %w", row.TurnIndex, err)
		}
		action, err := IntAsVector(row.PlayerAction, moveLen)
		if err != nil {
			return nil, fmt.Errorf("history: turn %d player action: %w", row.TurnIndex, err)
		}
		out.Rows = append(out.Rows, Row{
			TurnIndex:     row.TurnIndex,
			CurrentPlayer: row.CurrentPlayer,
			BoardState:    board,
			ActionChoices: choices,
			PlayerAction:  action,
			AgentID:       row.AgentID,
			Winner:        row.Winner,
			Scores:        append([]int(nil), row.Scores...),
		})
	}
	return out, nil
}
