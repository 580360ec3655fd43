// Package eval provides the position-evaluator contract search depends
// on, plus a simple positional weight-table implementation.
package eval

import "github.com/tsukushibito/reversi/board"

// Evaluator scores a position from toMove's point of view: positive
// favors toMove. This side-relative convention is what makes NegaMax
// valid — the caller negates a child's returned value before comparing
// it to its own.
type Evaluator interface {
	Evaluate(squares [board.CellCount]board.Square, toMove board.Color) int32
}

// weightTable gives each cell a fixed positional value: corners are
// strongly favored, X-squares (diagonally inside a corner) and
// C-squares (orthogonally adjacent to a corner) are penalized because
// occupying them early tends to hand the opponent the corner, and
// interior cells carry small negatives. The table is symmetric under
// the board's dihedral symmetries.
var weightTable = [board.CellCount]int32{
	30, -12, 0, -1, -1, 0, -12, 30,
	-12, -15, -3, -3, -3, -3, -15, -12,
	0, -3, 0, -1, -1, 0, -3, 0,
	-1, -3, -1, -1, -1, -1, -3, -1,
	-1, -3, -1, -1, -1, -1, -3, -1,
	0, -3, 0, -1, -1, 0, -3, 0,
	-12, -15, -3, -3, -3, -3, -15, -12,
	30, -12, 0, -1, -1, 0, -12, 30,
}

// Simple sums weightTable for toMove's own stones and subtracts it for
// the opponent's, skipping empty cells.
type Simple struct{}

// NewSimple returns the fixed weight-table evaluator.
func NewSimple() Simple { return Simple{} }

func (Simple) Evaluate(squares [board.CellCount]board.Square, toMove board.Color) int32 {
	self := toMove.Square()
	var v int32
	for i, s := range squares {
		switch {
		case s == board.Empty:
		case s == self:
			v += weightTable[i]
		default:
			v -= weightTable[i]
		}
	}
	return v
}
