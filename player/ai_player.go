package player

import (
	"github.com/tsukushibito/reversi/board"
	"github.com/tsukushibito/reversi/eval"
	"github.com/tsukushibito/reversi/search"
)

// AIPlayer always picks the search's recommended move: it rebuilds a
// bitboard root from the state snapshot and invokes search.Run at a
// fixed depth and mode. If search finds no move at all — an already
// game-over position handed to it defensively — it passes.
type AIPlayer struct {
	Depth int
	Mode  search.Mode
	Eval  eval.Evaluator
}

// NewAIPlayer builds an AIPlayer searching to depth plies with mode,
// using ev to score leaves.
func NewAIPlayer(depth int, mode search.Mode, ev eval.Evaluator) *AIPlayer {
	return &AIPlayer{Depth: depth, Mode: mode, Eval: ev}
}

func (p *AIPlayer) TakeAction(state State) board.Move {
	root := rebuildBitBoard(state)
	result := search.Run(root, state.Turn, p.Depth, p.Mode, p.Eval)
	if result.Move == nil {
		return board.NewPass(state.Turn)
	}
	return *result.Move
}

// rebuildBitBoard reconstructs a board.Board from a State snapshot. The
// AI player only ever needs the bitboard representation (it is the one
// search recurses over), so it is rebuilt directly from the squares and
// depth rather than routed through ArrayBoard or IndexBoard.
func rebuildBitBoard(state State) board.Board {
	return board.FromSquares(state.Squares, state.Depth)
}
