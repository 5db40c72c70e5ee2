// Package engine drives hexathello games: it validates and applies
// moves, advances the turn with the Othello skip rule, and detects the
// end of the game. Each Game owns its own sequence of board snapshots.
package engine

import (
	"fmt"

	"hexathello/game"
)

// Game is one hexathello game in progress.
type Game struct {
	layout        *game.Layout
	board         *game.Board
	turnIndex     int
	currentPlayer int
	complete      bool
	winner        int
	scores        []int
}

// NewGame starts a game from the standard opening position with the
// given starting player. Starting players are the caller's policy; pass
// an rng-drawn index for self-play.
func NewGame(layout *game.Layout, startingPlayer int) (*Game, error) {
	if startingPlayer < 0 || startingPlayer >= layout.PlayerCount() {
		return nil, fmt.Errorf("%w: starting player %d of %d",
			game.ErrInvalidConfiguration, startingPlayer, layout.PlayerCount())
	}
	board, err := game.NewBoard(layout)
	if err != nil {
		return nil, err
	}
	g := &Game{
		layout:        layout,
		board:         board,
		currentPlayer: startingPlayer,
		winner:        game.NoWinner,
		scores:        board.Scores(),
	}
	// An opening position can already be dead (size 2 has no legal
	// first move), so settle the starting player immediately.
	g.advance(startingPlayer)
	return g, nil
}

// Board returns the current snapshot. Callers must treat it as
// read-only; Play replaces it rather than mutating it.
func (g *Game) Board() *game.Board { return g.board }

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() int { return g.currentPlayer }

// TurnIndex returns the number of moves played so far.
func (g *Game) TurnIndex() int { return g.turnIndex }

// Complete reports whether the game is over.
func (g *Game) Complete() bool { return g.complete }

// Winner returns the winning player, or game.NoWinner on a tie or
// while the game is still running.
func (g *Game) Winner() int { return g.winner }

// Scores returns the current per-player cell counts.
func (g *Game) Scores() []int { return append([]int(nil), g.scores...) }

// Choices enumerates the legal moves for the current player. The result
// can be handed back to PlayWith to avoid recomputation.
func (g *Game) Choices() game.MoveChoiceDict {
	if g.complete {
		return game.MoveChoiceDict{}
	}
	return game.LegalMoves(g.board, g.currentPlayer)
}

// Play applies the current player's move at c.
func (g *Game) Play(c game.Coord) error {
	return g.PlayWith(c, nil)
}

// PlayWith is Play with a precomputed legal-move set, which must be the
// LegalMoves output for the current board and player.
func (g *Game) PlayWith(c game.Coord, choices game.MoveChoiceDict) error {
	if g.complete {
		return fmt.Errorf("%w: game is complete", game.ErrIllegalMove)
	}
	if choices == nil {
		choices = game.LegalMoves(g.board, g.currentPlayer)
	}
	captures, ok := choices[c]
	if !ok {
		return fmt.Errorf("%w: (%d,%d) is not a legal move for player %d",
			game.ErrIllegalMove, c.Q, c.R, g.currentPlayer)
	}
	next, err := game.ApplyMove(g.board, game.PlayerMove{
		Player:   g.currentPlayer,
		Coord:    c,
		Captures: captures,
	})
	if err != nil {
		return err
	}
	g.board = next
	g.scores = next.Scores()
	g.turnIndex++
	g.advance((g.currentPlayer + 1) % g.layout.PlayerCount())
	return nil
}

// advance hands the turn to the first player from the given one (in
// cyclic order) holding a legal move. A player without moves is
// skipped; when the board is full or a whole cycle is skipped, the game
// is over and the outcome is fixed.
func (g *Game) advance(from int) {
	n := g.layout.PlayerCount()
	if g.board.EmptyCount() > 0 {
		for skips := 0; skips < n; skips++ {
			p := (from + skips) % n
			if game.HasLegalMove(g.board, p) {
				g.currentPlayer = p
				return
			}
		}
	}
	g.complete = true
	g.winner, g.scores = game.Outcome(g.board)
}
