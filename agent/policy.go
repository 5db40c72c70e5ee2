package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"hexathello/game"
)

// Policy scores every cell given a point-of-view state vector. It is
// the one contract between this package and whatever model runtime
// produces the weights; training and inference live entirely outside
// this module.
type Policy interface {
	Predict(state []float64) ([]float64, error)
}

type policyAgent struct {
	id      string
	layout  *game.Layout
	policy  Policy
	pRandom float64
}

// NewPolicy returns an agent that feeds the POV-shifted state vector to
// a Policy and plays the legal move with the highest weight. Ties and
// the pRandom exploration roll fall back to a uniform draw.
func NewPolicy(id string, layout *game.Layout, policy Policy, pRandom float64) Agent {
	return policyAgent{id: id, layout: layout, policy: policy, pRandom: pRandom}
}

func (a policyAgent) ID() string { return a.id }

func (a policyAgent) ChooseMove(board *game.Board, player int, choices game.MoveChoiceDict, rng *rand.Rand) (game.Coord, error) {
	if len(choices) == 0 {
		return game.Coord{}, fmt.Errorf("agent: no legal moves to choose from")
	}
	// A single option needs no model call.
	if len(choices) == 1 {
		return sortedCoords(choices)[0], nil
	}
	if a.pRandom > 0 && rng.Float64() < a.pRandom {
		return randomCoord(choices, rng)
	}

	// The model always sees the board as if it were player 0.
	pov, err := game.PovShiftVector(game.StateVector(board), player, a.layout.PlayerCount())
	if err != nil {
		return game.Coord{}, err
	}
	weights, err := a.policy.Predict(pov)
	if err != nil {
		return game.Coord{}, fmt.Errorf("agent %s: %w", a.id, err)
	}
	if len(weights) != a.layout.CellCount() {
		return game.Coord{}, fmt.Errorf("agent %s: policy returned %d weights, want %d",
			a.id, len(weights), a.layout.CellCount())
	}

	// Mask to legal cells and take the argmax. Cell choices are
	// coordinate-space indices, so no inverse shift is needed.
	best := game.Coord{}
	bestWeight := 0.0
	found := false
	for _, c := range sortedCoords(choices) {
		i, err := a.layout.Index(c)
		if err != nil {
			return game.Coord{}, err
		}
		if !found || weights[i] > bestWeight {
			best = c
			bestWeight = weights[i]
			found = true
		}
	}
	return best, nil
}
