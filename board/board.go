package board

// Board is the capability set every representation (ArrayBoard,
// IndexBoard, BitBoard) satisfies. Values are immutable: ApplyMove
// returns a new Board rather than mutating the receiver, so search can
// recurse over successors without ever unwinding a mutation.
type Board interface {
	// Squares returns the 64 cells in canonical row-major layout.
	Squares() [CellCount]Square

	// Depth returns the ply counter: 0 at the initial position,
	// incremented by exactly 1 on every successful ApplyMove.
	Depth() uint32

	// ApplyMove returns the successor board and true if m is legal here;
	// otherwise the zero value and false. A placement is legal iff it
	// flips at least one opponent stone on an empty cell; a pass is legal
	// iff GetMovablePositions(m.Color) is empty.
	ApplyMove(m Move) (Board, bool)

	// GetMovablePositions returns every legal placement for color. Order
	// is unspecified but stable for a given implementation and state.
	GetMovablePositions(color Color) []Position

	// Count returns the number of cells holding s (Empty, Black or
	// White).
	Count(s Square) uint32

	// BlackCount, WhiteCount and EmptyCount are Count specialized to
	// each Square; BlackCount()+WhiteCount()+EmptyCount() == CellCount
	// always holds.
	BlackCount() uint32
	WhiteCount() uint32
	EmptyCount() uint32

	// IsGameOver reports whether both colors have no legal move.
	IsGameOver() bool

	// Turn is Black at even Depth, White at odd Depth.
	Turn() Color

	// Duplicate returns an independent snapshot by value.
	Duplicate() Board
}

// hasAnyMove is a small shared helper: true iff color has at least one
// legal placement on b.
func hasAnyMove(b Board, color Color) bool {
	return len(b.GetMovablePositions(color)) > 0
}
