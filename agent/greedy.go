package agent

import (
	"github.com/samber/lo"
	"golang.org/x/exp/rand"

	"hexathello/game"
)

type greedyAgent struct {
	id      string
	pRandom float64
}

// NewGreedy returns an agent that picks randomly among the moves with
// the most immediate captures. pRandom is the chance of playing a
// uniformly random legal move instead, the exploration mix used when
// generating training data.
func NewGreedy(id string, pRandom float64) Agent {
	return greedyAgent{id: id, pRandom: pRandom}
}

func (a greedyAgent) ID() string { return a.id }

func (a greedyAgent) ChooseMove(_ *game.Board, _ int, choices game.MoveChoiceDict, rng *rand.Rand) (game.Coord, error) {
	if len(choices) > 1 && a.pRandom > 0 && rng.Float64() < a.pRandom {
		return randomCoord(choices, rng)
	}
	most := lo.Max(lo.Map(lo.Values(choices), func(captures []game.CellCapture, _ int) int {
		return len(captures)
	}))
	best := lo.PickBy(choices, func(_ game.Coord, captures []game.CellCapture) bool {
		return len(captures) == most
	})
	return randomCoord(game.MoveChoiceDict(best), rng)
}
