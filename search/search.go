// Package search implements the NegaMax and NegaAlpha game-tree search,
// parameterized by a pluggable board.Board and eval.Evaluator.
package search

import (
	"math"

	"github.com/tsukushibito/reversi/board"
	"github.com/tsukushibito/reversi/eval"
)

// Mode selects between the unpruned baseline and the alpha-beta variant.
type Mode int

const (
	NegaMax Mode = iota
	NegaAlpha
)

// Result is a search call's output: the value from the root side's
// perspective, the chosen move (nil when depth is 0 or the root is
// already game-over; a root with no placement but a live game gets a
// Pass), and how many nodes were visited.
type Result struct {
	Value int32
	Move  *board.Move
	Nodes int
}

// node is the transient recursion frame: current board and side to
// move; the remaining depth is passed alongside it. It lives only for
// the duration of one Run call — no caching between searches.
type node struct {
	b    board.Board
	side board.Color
}

// children expands node: every legal placement in generation order, or
// a single Pass child if there are none. Pass does not terminate
// search — only IsGameOver or running out of depth does.
func (n node) children() []board.Move {
	positions := n.b.GetMovablePositions(n.side)
	if len(positions) == 0 {
		return []board.Move{board.NewPass(n.side)}
	}
	moves := make([]board.Move, len(positions))
	for i, p := range positions {
		moves[i] = board.NewPlace(n.side, p)
	}
	return moves
}

// Run searches root to at most depth plies using evaluator ev and the
// requested mode, returning the best move for root's side to move.
func Run(root board.Board, side board.Color, depth int, mode Mode, ev eval.Evaluator) Result {
	nodes := 0
	var value int32
	var move *board.Move

	n := node{b: root, side: side}
	switch mode {
	case NegaAlpha:
		value, move = negaAlpha(n, depth, math.MinInt32+1, math.MaxInt32, ev, &nodes)
	default:
		value, move = negaMax(n, depth, ev, &nodes)
	}

	return Result{Value: value, Move: move, Nodes: nodes}
}

// negaMax is the unpruned baseline: visits every node at every level up
// to depth, taking the maximum negated child value. On ties the first
// child in generation order wins.
func negaMax(n node, depth int, ev eval.Evaluator, nodes *int) (int32, *board.Move) {
	*nodes++

	if depth == 0 || n.b.IsGameOver() {
		return ev.Evaluate(n.b.Squares(), n.side), nil
	}

	moves := n.children()
	best := int32(math.MinInt32)
	var bestMove *board.Move
	for i, m := range moves {
		child, ok := n.b.ApplyMove(m)
		if !ok {
			panic("search: generated move rejected by board")
		}
		v, _ := negaMax(node{b: child, side: n.side.Opponent()}, depth-1, ev, nodes)
		v = -v
		if bestMove == nil || v > best {
			best = v
			mCopy := moves[i]
			bestMove = &mCopy
		}
	}
	return best, bestMove
}

// negaAlpha is NegaMax with alpha-beta pruning. The child is searched
// with bounds (-beta, -alpha); a negated child value >= beta prunes the
// remaining siblings. The returned value is the final alpha at this
// node. Ties keep the first (generation-order) move responsible for the
// current alpha.
func negaAlpha(n node, depth int, alpha, beta int32, ev eval.Evaluator, nodes *int) (int32, *board.Move) {
	*nodes++

	if depth == 0 || n.b.IsGameOver() {
		return ev.Evaluate(n.b.Squares(), n.side), nil
	}

	moves := n.children()
	var bestMove *board.Move
	for i, m := range moves {
		child, ok := n.b.ApplyMove(m)
		if !ok {
			panic("search: generated move rejected by board")
		}
		v, _ := negaAlpha(node{b: child, side: n.side.Opponent()}, depth-1, -beta, -alpha, ev, nodes)
		v = -v
		if v > alpha {
			alpha = v
			mCopy := moves[i]
			bestMove = &mCopy
		}
		if alpha >= beta {
			break
		}
	}
	return alpha, bestMove
}
