package player

import (
	"log"

	"github.com/tsukushibito/reversi/board"
)

// Game alternates turns between two Players until the board reports
// IsGameOver. It is the C9 driver from spec.md: each turn it builds a
// read-only State snapshot, hands it to the player to move, applies the
// returned Move, and on an illegal move re-queries the same player for
// the same ply rather than advancing — tests for the AI player rely on
// this retry behavior.
type Game struct {
	Black, White Player
	Logger       *log.Logger

	board   board.Board
	history []board.Board
	moves   []board.Move
}

// NewGame starts a session on initial with the given players.
func NewGame(initial board.Board, black, white Player) *Game {
	return &Game{Black: black, White: white, board: initial}
}

// Run plays the game to completion and returns the final State.
func (g *Game) Run() State {
	var lastMove *board.Move
	for !g.board.IsGameOver() {
		current := g.Black
		if g.board.Turn() == board.ColorWhite {
			current = g.White
		}

		state := NewState(g.board, lastMove)
		move := current.TakeAction(state)

		next, ok := g.board.ApplyMove(move)
		if !ok {
			if g.Logger != nil {
				g.Logger.Printf("rejected illegal move %s, re-querying %s", move, g.board.Turn())
			}
			continue
		}

		g.history = append(g.history, g.board)
		g.moves = append(g.moves, move)
		mCopy := move
		lastMove = &mCopy
		g.board = next
	}
	return NewState(g.board, lastMove)
}

// Board returns the current (possibly mid-game) board.
func (g *Game) Board() board.Board { return g.board }

// Moves returns every successfully applied move, in play order.
func (g *Game) Moves() []board.Move { return g.moves }

// BoardHistory returns the board before each successfully applied move,
// in play order (one entry per element of Moves).
func (g *Game) BoardHistory() []board.Board { return g.history }
