package agent

import (
	"golang.org/x/exp/rand"

	"hexathello/game"
)

type randomAgent struct {
	id string
}

// NewRandom returns an agent that draws uniformly from the legal moves.
func NewRandom(id string) Agent {
	return randomAgent{id: id}
}

func (a randomAgent) ID() string { return a.id }

func (a randomAgent) ChooseMove(_ *game.Board, _ int, choices game.MoveChoiceDict, rng *rand.Rand) (game.Coord, error) {
	return randomCoord(choices, rng)
}
