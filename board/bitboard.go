package board

import "math/bits"

// BitBoard is two 64-bit words, one per color, bit r*Size+c set iff that
// cell holds that color. It is branch-free and allocation-free per move
// and is the representation search recurses over.
type BitBoard struct {
	black, white uint64
	depth        uint32
}

// Mask discipline: these three masks are the only thing preventing a
// run from wrapping across the right/left edge when shifting by 1
// (horizontal), 7 or 9 (diagonals). Vertical shifts by 8 never wrap —
// they simply fall off the top or bottom.
const (
	hMask uint64 = 0x7e7e7e7e7e7e7e7e
	vMask uint64 = 0x00ffffffffffff00
	dMask uint64 = 0x007e7e7e7e7e7e00
)

// NewBitBoard builds the standard initial position.
func NewBitBoard() *BitBoard {
	bb := &BitBoard{}
	set := func(p Position) uint64 { return uint64(1) << p.Index() }
	bb.black = set(NewPosition(3, 4)) | set(NewPosition(4, 3))
	bb.white = set(NewPosition(3, 3)) | set(NewPosition(4, 4))
	return bb
}

func bitboardFromWords(black, white uint64, depth uint32) *BitBoard {
	return &BitBoard{black: black, white: white, depth: depth}
}

// FromSquares rebuilds a BitBoard from a flat cell snapshot and a depth,
// as used when a Player only receives a State snapshot and needs a
// Board to query again (the search's AI player does this).
func FromSquares(squares [CellCount]Square, depth uint32) *BitBoard {
	var black, white uint64
	for i, s := range squares {
		switch s {
		case Black:
			black |= uint64(1) << i
		case White:
			white |= uint64(1) << i
		}
	}
	return bitboardFromWords(black, white, depth)
}

func (b *BitBoard) playerWords(color Color) (player, opponent uint64) {
	if color == ColorBlack {
		return b.black, b.white
	}
	return b.white, b.black
}

func (b *BitBoard) Squares() [CellCount]Square {
	var squares [CellCount]Square
	for i := 0; i < CellCount; i++ {
		bit := uint64(1) << i
		switch {
		case b.black&bit != 0:
			squares[i] = Black
		case b.white&bit != 0:
			squares[i] = White
		}
	}
	return squares
}

func (b *BitBoard) Depth() uint32 { return b.depth }
func (b *BitBoard) Turn() Color   { return TurnFromDepth(b.depth) }

func (b *BitBoard) Count(s Square) uint32 {
	switch s {
	case Black:
		return uint32(bits.OnesCount64(b.black))
	case White:
		return uint32(bits.OnesCount64(b.white))
	default:
		return CellCount - uint32(bits.OnesCount64(b.black|b.white))
	}
}

func (b *BitBoard) BlackCount() uint32 { return b.Count(Black) }
func (b *BitBoard) WhiteCount() uint32 { return b.Count(White) }
func (b *BitBoard) EmptyCount() uint32 { return b.Count(Empty) }

func (b *BitBoard) IsGameOver() bool {
	return legalMoves(b.black, b.white) == 0 && legalMoves(b.white, b.black) == 0
}

func (b *BitBoard) Duplicate() Board {
	dup := *b
	return &dup
}

// continuousLine folds mask&shift(acc) six times: a run along an 8-cell
// line has length at most 6, so six iterations always saturate it.
func continuousLine(data uint64, mask uint64, shift int, left bool) uint64 {
	doShift := func(v uint64) uint64 {
		if left {
			return v << uint(shift)
		}
		return v >> uint(shift)
	}
	result := mask & doShift(data)
	for i := 0; i < 5; i++ {
		result |= mask & doShift(result)
	}
	return result
}

type direction struct {
	mask  uint64
	shift int
}

var directions = [4]direction{
	{hMask, 1},
	{vMask, 8},
	{dMask, 9},
	{dMask, 7},
}

// legalMoves computes the legal-move mask for player against opponent:
// for each of the four direction groups, the contiguous opponent runs
// starting from player's stones in both orientations, shifted one more
// step and intersected with the empty cells.
func legalMoves(player, opponent uint64) uint64 {
	empty := ^(player | opponent)
	var moves uint64
	for _, d := range directions {
		mask := opponent & d.mask
		leftRun := continuousLine(player, mask, d.shift, true)
		rightRun := continuousLine(player, mask, d.shift, false)
		moves |= (leftRun << uint(d.shift)) | (rightRun >> uint(d.shift))
	}
	return moves & empty
}

// flipMask computes the set of opponent stones a placement at pos
// (a single set bit) would capture.
func flipMask(player, opponent, pos uint64) uint64 {
	var flips uint64
	for _, d := range directions {
		mask := opponent & d.mask

		leftRun := continuousLine(pos, mask, d.shift, true)
		if player&(leftRun<<uint(d.shift)) != 0 {
			flips |= leftRun
		}

		rightRun := continuousLine(pos, mask, d.shift, false)
		if player&(rightRun>>uint(d.shift)) != 0 {
			flips |= rightRun
		}
	}
	return flips
}

func (b *BitBoard) GetMovablePositions(color Color) []Position {
	player, opponent := b.playerWords(color)
	moves := legalMoves(player, opponent)
	var positions []Position
	for moves != 0 {
		i := bits.TrailingZeros64(moves)
		positions = append(positions, PositionFromIndex(i))
		moves &= moves - 1
	}
	return positions
}

func (b *BitBoard) ApplyMove(m Move) (Board, bool) {
	player, opponent := b.playerWords(m.Color)

	if m.Kind == MovePass {
		if legalMoves(player, opponent) != 0 {
			return nil, false
		}
		return bitboardFromWords(b.black, b.white, b.depth+1), true
	}

	pos := uint64(1) << m.Pos.Index()
	if pos&legalMoves(player, opponent) == 0 {
		return nil, false
	}

	flips := flipMask(player, opponent, pos)
	nextPlayer := player ^ pos ^ flips
	nextOpponent := opponent ^ flips

	if m.Color == ColorBlack {
		return bitboardFromWords(nextPlayer, nextOpponent, b.depth+1), true
	}
	return bitboardFromWords(nextOpponent, nextPlayer, b.depth+1), true
}
