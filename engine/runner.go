package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hexathello/agent"
	"hexathello/game"
	"hexathello/history"
)

// Run plays one full game with the given agents, one per player, and
// returns the literal history: one row per turn with the board before
// the move, the legality mask, and the chosen move. The starting player
// is drawn from rng.
func Run(layout *game.Layout, agents []agent.Agent, rng *rand.Rand) (*history.History, error) {
	if len(agents) != layout.PlayerCount() {
		return nil, fmt.Errorf("engine: %d agents for %d players", len(agents), layout.PlayerCount())
	}

	g, err := NewGame(layout, rng.Intn(layout.PlayerCount()))
	if err != nil {
		return nil, err
	}
	hist := history.NewLiteral(layout.PlayerCount(), layout.Size())

	for !g.Complete() {
		player := g.CurrentPlayer()
		turn := g.TurnIndex()
		choices := g.Choices()

		state := game.StateVector(g.Board())
		mask, err := game.LegalMoveVector(layout, choices)
		if err != nil {
			return nil, err
		}

		c, err := agents[player].ChooseMove(g.Board(), player, choices, rng)
		if err != nil {
			return nil, fmt.Errorf("engine: turn %d: %w", turn, err)
		}
		action, err := game.MoveVector(layout, c)
		if err != nil {
			return nil, fmt.Errorf("engine: turn %d: %w", turn, err)
		}
		if err := g.PlayWith(c, choices); err != nil {
			return nil, fmt.Errorf("engine: turn %d agent %s: %w", turn, agents[player].ID(), err)
		}

		log.Debug().Msgf("turn %d: player %d (%s) plays (%d,%d), scores %v",
			turn, player, agents[player].ID(), c.Q, c.R, g.Scores())

		hist.Append(history.Row{
			TurnIndex:     turn,
			CurrentPlayer: player,
			BoardState:    state,
			ActionChoices: mask,
			PlayerAction:  action,
			AgentID:       agents[player].ID(),
		})
	}

	hist.SetOutcome(g.Winner(), g.Scores())
	log.Info().Msgf("game over after %d turns: winner %d, scores %v",
		g.TurnIndex(), g.Winner(), g.Scores())
	return hist, nil
}
