// Package agent provides the move pickers used for self-play. Every
// strategy is a distinct Agent implementation behind the same
// capability interface; there is no hierarchy between them.
package agent

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"

	"hexathello/game"
)

// Agent picks one coordinate out of the legal-move set for a turn. The
// board and choices are snapshots the agent must not retain; the rng is
// caller-supplied so runs stay reproducible under a fixed seed.
type Agent interface {
	ID() string
	ChooseMove(board *game.Board, player int, choices game.MoveChoiceDict, rng *rand.Rand) (game.Coord, error)
}

// sortedCoords returns the legal coordinates in canonical (q, then r)
// order, so random draws depend only on the rng and not on map order.
func sortedCoords(choices game.MoveChoiceDict) []game.Coord {
	coords := make([]game.Coord, 0, len(choices))
	for c := range choices {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Q != coords[j].Q {
			return coords[i].Q < coords[j].Q
		}
		return coords[i].R < coords[j].R
	})
	return coords
}

func randomCoord(choices game.MoveChoiceDict, rng *rand.Rand) (game.Coord, error) {
	if len(choices) == 0 {
		return game.Coord{}, fmt.Errorf("agent: no legal moves to choose from")
	}
	coords := sortedCoords(choices)
	return coords[rng.Intn(len(coords))], nil
}
